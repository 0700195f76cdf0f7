package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazool.yaml")
	body := []byte("display:\n  tick_rate: 30\nanimation:\n  step: 2\n  throttle: 3\nspawn:\n  four_prob: 0.1\n  seed: 7\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Display.TickRate != 30 || cfg.Animation.Step != 2 || cfg.Animation.Throttle != 3 {
		t.Errorf("loaded config = %+v", cfg)
	}
	if cfg.Spawn.FourProb != 0.1 || cfg.Spawn.Seed != 7 {
		t.Errorf("loaded spawn = %+v", cfg.Spawn)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Run from an empty directory with an empty home so nothing on
	// disk shadows the embedded default.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load fallback error: %v", err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("fallback tick rate = %d, want 60", cfg.Display.TickRate)
	}
}

func TestRuntimeDefaultsMissingTickRate(t *testing.T) {
	// A YAML file without a display section leaves TickRate at zero;
	// the flattened runtime must still tick.
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero value config", Config{}},
		{"negative tick rate", Config{Display: DisplayConfig{TickRate: -10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := tt.cfg.Runtime()
			if rt.TickRate != DefaultConfig().Display.TickRate {
				t.Errorf("TickRate = %d, want default %d", rt.TickRate, DefaultConfig().Display.TickRate)
			}
		})
	}
}

func TestRuntimeFlattening(t *testing.T) {
	cfg := Config{
		Display:   DisplayConfig{TickRate: 45},
		Animation: AnimationConfig{Step: 2, Throttle: 4},
		Spawn:     SpawnConfig{FourProb: 0.25, Seed: 99},
	}

	rt := cfg.Runtime()
	if rt.TickRate != 45 || rt.AnimStep != 2 || rt.AnimThrottle != 4 {
		t.Errorf("runtime = %+v", rt)
	}
	if rt.FourProb != 0.25 || rt.Seed != 99 {
		t.Errorf("runtime spawn = %+v", rt)
	}
}
