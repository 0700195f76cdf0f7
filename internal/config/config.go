// Package config provides YAML-based configuration loading for the
// game: tick rate, animation pacing, and tile spawn behavior.
package config

import "github.com/horsecatdog/gazool/internal/core"

// Config contains all tunable settings.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
}

// DisplayConfig defines how the console is driven.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Step calls per second
}

// AnimationConfig defines how sliding tiles are paced.
type AnimationConfig struct {
	Step     int `yaml:"step"`     // console cells moved per frame, per axis
	Throttle int `yaml:"throttle"` // ticks between animation frames
}

// SpawnConfig defines how fresh tiles are rolled.
type SpawnConfig struct {
	FourProb float64 `yaml:"four_prob"` // chance a spawn is a 4 instead of a 2
	Seed     int64   `yaml:"seed"`      // 0 seeds from the clock
}

// Runtime flattens the config into the settings the session consumes.
// A missing or nonsensical tick rate falls back to the default so a
// partial YAML file cannot stall the tick loop.
func (c Config) Runtime() core.RuntimeConfig {
	tickRate := c.Display.TickRate
	if tickRate < 1 {
		tickRate = DefaultConfig().Display.TickRate
	}
	return core.RuntimeConfig{
		TickRate:     tickRate,
		Seed:         c.Spawn.Seed,
		AnimStep:     c.Animation.Step,
		AnimThrottle: c.Animation.Throttle,
		FourProb:     c.Spawn.FourProb,
	}
}
