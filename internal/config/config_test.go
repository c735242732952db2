package config

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/unvolume/internal/control"
	"github.com/san-kum/unvolume/internal/controls"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Isotope.DecayRate != 0.25 {
		t.Errorf("default decay rate = %v, want 0.25", cfg.Isotope.DecayRate)
	}
	if cfg.Sling.MaxPull != 200 {
		t.Errorf("default max pull = %v, want 200", cfg.Sling.MaxPull)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unvolume.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 1234
	cfg.Bounce.Threshold = 2.5
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", loaded.Seed)
	}
	if loaded.Bounce.Threshold != 2.5 {
		t.Errorf("bounce threshold = %v, want 2.5", loaded.Bounce.Threshold)
	}
	if loaded.Scramble.Charset == "" {
		t.Error("charset lost in round trip")
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative interval", func(c *Config) { c.Gravity.IntervalMS = -1 }},
		{"restitution one", func(c *Config) { c.Sling.Restitution = 1.0 }},
		{"zero max pull", func(c *Config) { c.Sling.MaxPull = 0 }},
		{"negative decay", func(c *Config) { c.Isotope.DecayRate = -0.5 }},
		{"zero min points", func(c *Config) { c.Circle.MinPoints = 0 }},
		{"zero mismatch delay", func(c *Config) { c.Memory.MismatchDelayMS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, control.ErrParameterBounds) {
				t.Errorf("error %v is not ErrParameterBounds", err)
			}
		})
	}
}

func TestConfigApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity.Friction = 0.9
	cfg.Gravity.IntervalMS = 32
	cfg.Memory.MismatchDelayMS = 500

	g := controls.NewGravity()
	cfg.Apply(g)
	if g.Friction != 0.9 {
		t.Errorf("friction = %v, want 0.9", g.Friction)
	}
	if g.Interval() != 32*time.Millisecond {
		t.Errorf("interval = %v, want 32ms", g.Interval())
	}

	m := controls.NewMemory(newRand())
	cfg.Apply(m)
	if m.MismatchDelay != 500*time.Millisecond {
		t.Errorf("mismatch delay = %v, want 500ms", m.MismatchDelay)
	}
}

func TestPresets(t *testing.T) {
	if Preset("nonsense") != nil {
		t.Error("unknown preset should be nil")
	}
	moon := Preset("moon")
	if moon == nil {
		t.Fatal("moon preset missing")
	}
	if moon.Gravity.G >= DefaultConfig().Gravity.G {
		t.Error("moon gravity should be weaker than default")
	}
	if err := moon.Validate(); err != nil {
		t.Errorf("moon preset invalid: %v", err)
	}
	for name := range Presets {
		cfg := Preset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
