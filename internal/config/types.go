// Package config provides the game configuration: typed settings, embedded
// defaults, YAML/TOML loading, validation and difficulty progression.
package config

// FlappyConfig is the full set of tunables for one game session.
// All lengths are in world units; speeds and accelerations are per tick.
type FlappyConfig struct {
	Field      FlappyField      `yaml:"field" toml:"field"`
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Spawn      FlappySpawn      `yaml:"spawn" toml:"spawn"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyField is the size of the play field.
type FlappyField struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// FlappyPhysics defines avatar and scroll physics.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"`     // negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"` // 0 = no cap
	PipeSpeed    float64 `yaml:"pipe_speed" toml:"pipe_speed"`
}

// FlappyObstacles defines pipe geometry and gap placement margins.
type FlappyObstacles struct {
	PipeWidth    float64 `yaml:"pipe_width" toml:"pipe_width"`
	GapSize      float64 `yaml:"gap_size" toml:"gap_size"`
	TopMargin    float64 `yaml:"top_margin" toml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"`
}

// Spawn interval units.
const (
	SpawnUnitTicks  = "ticks"
	SpawnUnitMillis = "ms"
)

// FlappySpawn defines how often a new pipe appears.
type FlappySpawn struct {
	Unit     string `yaml:"unit" toml:"unit"`         // "ticks" or "ms"
	Interval int64  `yaml:"interval" toml:"interval"` // in Unit
}

// FlappyPlayer defines the avatar's start position and hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// DifficultyConfig defines optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// Progression types.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // score or ticks at which the level reaches 1.0
}

// ScalingConfig defines how much the level changes the game at 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	IntervalReduction float64 `yaml:"interval_reduction" toml:"interval_reduction"` // fraction of the spawn interval removed
}

// DifficultyPreset is a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the starting level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset turns difficulty progression on at the preset's level,
// or off entirely for the fixed preset. An empty preset leaves cfg unchanged.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == ProgressionNone {
			cfg.Difficulty.Progression.Type = ProgressionScore
		}
	}
}
