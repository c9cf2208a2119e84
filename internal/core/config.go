package core

// RuntimeConfig contains configuration passed to the session at initialization.
// The platform fills it from CLI flags; the session uses it for surface size
// and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in pixels
	ScreenH  int   // Surface height in pixels
	TickRate int   // Simulation frames per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  480,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}
