package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in configuration: a 400x600 field with the
// classic tuning (gravity 0.5, flap -10, 150 unit gap, pipe every 90 ticks).
func Default() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      0.5,
			JumpImpulse:  -10,
			MaxFallSpeed: 0,
			PipeSpeed:    2,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    60,
			GapSize:      150,
			TopMargin:    100,
			BottomMargin: 100,
		},
		Spawn: FlappySpawn{
			Unit:     SpawnUnitTicks,
			Interval: 90, // 1.5s at 60 ticks/s
		},
		Player: FlappyPlayer{
			X:      100,
			Y:      300,
			Width:  40,
			Height: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
