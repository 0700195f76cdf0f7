package config

import (
	_ "embed"
)

//go:embed defaults/gazool.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate: 60,
		},
		Animation: AnimationConfig{
			Step:     1,
			Throttle: 1,
		},
		Spawn: SpawnConfig{
			FourProb: 0.5,
			Seed:     0,
		},
	}
}
