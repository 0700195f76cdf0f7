package main

import "github.com/horsecatdog/gazool/internal/core"

// applyFlagOverrides layers explicitly-set global flags over the file
// configuration. Only flags the user actually passed override the
// file: --fps defaults to 60 and would otherwise silently clobber
// display.tick_rate, and --seed 0 must be distinguishable from the
// flag being absent.
func applyFlagOverrides(cfg core.RuntimeConfig, fpsSet, seedSet bool) core.RuntimeConfig {
	if fpsSet {
		cfg.TickRate = flagFPS
	}
	if seedSet {
		cfg.Seed = flagSeed
	}
	return cfg
}
