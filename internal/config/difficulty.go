package config

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DifficultyManager derives the current pipe speed and spawn interval from
// the score or elapsed ticks.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = core.ClampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level in [0, 1].
// A disabled manager always reports level 0 so the configured values are used unchanged.
func (d *DifficultyManager) Level(score int, ticks int64) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score) / maxAt
	case ProgressionTime:
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = core.ClampF(progress, 0, 1)
	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Speed scales the base pipe speed up to base*(1+speed_multiplier).
func (d *DifficultyManager) Speed(base float64, score int, ticks int64) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens the base spawn interval by up to interval_reduction of it.
// The result is never below 1.
func (d *DifficultyManager) Interval(base int64, score int, ticks int64) int64 {
	cut := d.Level(score, ticks) * d.cfg.Scaling.IntervalReduction
	result := int64(math.Round(float64(base) * (1 - cut)))
	if result < 1 {
		result = 1
	}
	return result
}
