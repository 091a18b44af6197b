package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks that cfg describes a playable game.
func (cfg FlappyConfig) Validate() error {
	p := cfg.Physics
	if p.Gravity <= 0 {
		return invalid("physics.gravity must be positive, got %g", p.Gravity)
	}
	if p.JumpImpulse >= 0 {
		return invalid("physics.jump_impulse must be negative, got %g", p.JumpImpulse)
	}
	if p.MaxFallSpeed < 0 {
		return invalid("physics.max_fall_speed must not be negative, got %g", p.MaxFallSpeed)
	}
	if p.PipeSpeed <= 0 {
		return invalid("physics.pipe_speed must be positive, got %g", p.PipeSpeed)
	}

	o := cfg.Obstacles
	if o.PipeWidth <= 0 {
		return invalid("obstacles.pipe_width must be positive, got %g", o.PipeWidth)
	}
	if o.GapSize <= 0 {
		return invalid("obstacles.gap_size must be positive, got %g", o.GapSize)
	}
	if o.TopMargin < 0 || o.BottomMargin < 0 {
		return invalid("obstacles margins must not be negative, got %g/%g", o.TopMargin, o.BottomMargin)
	}

	switch cfg.Spawn.Unit {
	case SpawnUnitTicks, SpawnUnitMillis:
	default:
		return invalid("spawn.unit must be %q or %q, got %q", SpawnUnitTicks, SpawnUnitMillis, cfg.Spawn.Unit)
	}
	if cfg.Spawn.Interval <= 0 {
		return invalid("spawn.interval must be positive, got %d", cfg.Spawn.Interval)
	}

	pl := cfg.Player
	if pl.Width <= 0 || pl.Height <= 0 {
		return invalid("player size must be positive, got %gx%g", pl.Width, pl.Height)
	}
	if pl.Height >= o.GapSize {
		return invalid("player.height %g does not fit through gap_size %g", pl.Height, o.GapSize)
	}

	if err := cfg.CheckField(cfg.Field.Width, cfg.Field.Height); err != nil {
		return err
	}

	d := cfg.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("difficulty.initial_level must be within [0, 1], got %g", d.InitialLevel)
	}
	if d.Scaling.IntervalReduction < 0 || d.Scaling.IntervalReduction >= 1 {
		return invalid("difficulty.scaling.interval_reduction must be within [0, 1), got %g", d.Scaling.IntervalReduction)
	}
	switch d.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone, "":
	default:
		return invalid("difficulty.progression.type %q is not one of score, time, none", d.Progression.Type)
	}

	return nil
}

// CheckField reports whether a field of the given size is consistent with
// the pipe gap, spawn margins and player placement of cfg. Frontends call
// it (through the session) before applying a resize.
func (cfg FlappyConfig) CheckField(width, height float64) error {
	if width <= 0 || height <= 0 {
		return invalid("field size must be positive, got %gx%g", width, height)
	}

	o := cfg.Obstacles
	if need := o.TopMargin + o.GapSize + o.BottomMargin; need > height {
		return invalid("field height %g is smaller than top_margin+gap_size+bottom_margin %g", height, need)
	}

	pl := cfg.Player
	if pl.X < 0 || pl.X+pl.Width > width {
		return invalid("player.x %g with width %g does not fit field width %g", pl.X, pl.Width, width)
	}
	if pl.Y < 0 || pl.Y+pl.Height > height {
		return invalid("player.y %g with height %g does not fit field height %g", pl.Y, pl.Height, height)
	}

	return nil
}
