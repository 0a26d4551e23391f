package core

// RuntimeConfig contains configuration passed to the runner at initialization.
// Frontends use it to describe the surface they project onto.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host scheduler
	Seed     int64 // RNG seed for obstacle generation (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
