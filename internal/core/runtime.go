package core

// RuntimeConfig carries the per-run settings that come from the platform
// rather than from the game config file.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for obstacle placement (0 = frontend picks one)
}

// DefaultRuntimeConfig returns an 80x24, 60 tick/s configuration.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
