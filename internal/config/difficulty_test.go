package config

import "testing"

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty)

	if got := d.Speed(2, 1000, 1000); got != 2 {
		t.Errorf("Speed() = %g, expected base 2 when disabled", got)
	}
	if got := d.Interval(90, 1000, 1000); got != 90 {
		t.Errorf("Interval() = %d, expected base 90 when disabled", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := Default().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		level    float64
		speed    float64
		interval int64
	}{
		{0, 0, 2, 90},
		{25, 0.5, 3, 72},
		{50, 1, 4, 54},
		{500, 1, 4, 54},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %g, expected %g", tc.score, got, tc.level)
		}
		if got := d.Speed(2, tc.score, 0); got != tc.speed {
			t.Errorf("Speed(score=%d) = %g, expected %g", tc.score, got, tc.speed)
		}
		if got := d.Interval(90, tc.score, 0); got != tc.interval {
			t.Errorf("Interval(score=%d) = %d, expected %d", tc.score, got, tc.interval)
		}
	}
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressionTime, MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %g, expected initial 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %g, expected 0.75", got)
	}
}

func TestDifficultyIntervalNeverBelowOne(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionScore, MaxAt: 1},
		Scaling:     ScalingConfig{IntervalReduction: 0.99},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Interval(1, 10, 0); got != 1 {
		t.Errorf("Interval() = %d, expected floor of 1", got)
	}
}

func TestDifficultyIsEnabled(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		prog     string
		expected bool
	}{
		{"disabled", false, ProgressionScore, false},
		{"score", true, ProgressionScore, true},
		{"time", true, ProgressionTime, true},
		{"fixed level", true, ProgressionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DifficultyConfig{Enabled: tc.enabled, Progression: ProgressionConfig{Type: tc.prog, MaxAt: 10}}
			if got := NewDifficultyManager(cfg).IsEnabled(); got != tc.expected {
				t.Errorf("IsEnabled() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
