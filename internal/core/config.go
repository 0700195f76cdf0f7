package core

// RuntimeConfig is passed to the game session at initialization.
type RuntimeConfig struct {
	TickRate     int   // Simulation ticks per second (default 60)
	Seed         int64 // RNG seed for deterministic tile spawns; 0 means time-based
	AnimStep     int   // Console cells an animated block travels per scheduler step
	AnimThrottle int   // Advance animations every Nth tick (1 = every tick)
	FourProb     float64
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:     60,
		Seed:         0,
		AnimStep:     1,
		AnimThrottle: 1,
		FourProb:     0.5,
	}
}
