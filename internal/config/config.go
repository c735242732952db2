// Package config holds the tuning knobs for every control and the menu
// animation, with yaml load/save for experimenting without rebuilds.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/unvolume/internal/control"
	"github.com/san-kum/unvolume/internal/controls"
	"github.com/san-kum/unvolume/internal/scramble"
)

type Config struct {
	Seed     int64          `yaml:"seed"`
	Gravity  GravityConfig  `yaml:"gravity"`
	Color    ColorConfig    `yaml:"color"`
	Sling    SlingConfig    `yaml:"slingshot"`
	Isotope  IsotopeConfig  `yaml:"isotope"`
	Circle   CircleConfig   `yaml:"circle"`
	Bounce   BounceConfig   `yaml:"bounce"`
	Memory   MemoryConfig   `yaml:"memory"`
	Scramble ScrambleConfig `yaml:"scramble"`
}

type GravityConfig struct {
	Smoothing  float64 `yaml:"smoothing"`
	G          float64 `yaml:"g"`
	Friction   float64 `yaml:"friction"`
	BounceLoss float64 `yaml:"bounce_loss"`
	IntervalMS int     `yaml:"interval_ms"`
}

type ColorConfig struct {
	Drift      int `yaml:"drift"`
	IntervalMS int `yaml:"interval_ms"`
}

type SlingConfig struct {
	LaunchStrength float64 `yaml:"launch_strength"`
	Gravity        float64 `yaml:"gravity"`
	Restitution    float64 `yaml:"restitution"`
	MaxPull        float64 `yaml:"max_pull"`
}

type IsotopeConfig struct {
	DecayRate  float64 `yaml:"decay_rate"`
	IntervalMS int     `yaml:"interval_ms"`
}

type CircleConfig struct {
	MinPoints    int `yaml:"min_points"`
	ClearAfterMS int `yaml:"clear_after_ms"`
}

type BounceConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
	FlingScale  float64 `yaml:"fling_scale"`
	Threshold   float64 `yaml:"threshold"`
}

type MemoryConfig struct {
	MismatchDelayMS int `yaml:"mismatch_delay_ms"`
}

type ScrambleConfig struct {
	Charset            string `yaml:"charset"`
	TitleSpeedMS       int    `yaml:"title_speed_ms"`
	TileSpeedMS        int    `yaml:"tile_speed_ms"`
	PlaceholderSpeedMS int    `yaml:"placeholder_speed_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Gravity: GravityConfig{
			Smoothing:  controls.DefaultTiltSmoothing,
			G:          controls.DefaultTiltGravity,
			Friction:   controls.DefaultTiltFriction,
			BounceLoss: controls.DefaultTiltBounceLoss,
			IntervalMS: 16,
		},
		Color: ColorConfig{
			Drift:      controls.DefaultColorDrift,
			IntervalMS: 150,
		},
		Sling: SlingConfig{
			LaunchStrength: controls.DefaultLaunchStrength,
			Gravity:        controls.DefaultSlingGravity,
			Restitution:    controls.DefaultSlingBounce,
			MaxPull:        controls.DefaultMaxPull,
		},
		Isotope: IsotopeConfig{
			DecayRate:  controls.DefaultDecayRate,
			IntervalMS: 50,
		},
		Circle: CircleConfig{
			MinPoints:    controls.DefaultMinStrokePoints,
			ClearAfterMS: 1000,
		},
		Bounce: BounceConfig{
			Gravity:     controls.DefaultBounceGravity,
			Restitution: controls.DefaultBounceRestitution,
			FlingScale:  controls.DefaultFlingScale,
			Threshold:   controls.DefaultBounceThreshold,
		},
		Memory: MemoryConfig{
			MismatchDelayMS: 1000,
		},
		Scramble: ScrambleConfig{
			Charset:            scramble.DefaultCharset,
			TitleSpeedMS:       30,
			TileSpeedMS:        40,
			PlaceholderSpeedMS: 60,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Gravity.IntervalMS <= 0 || c.Color.IntervalMS <= 0 || c.Isotope.IntervalMS <= 0 {
		return fmt.Errorf("%w: tick intervals must be positive", control.ErrParameterBounds)
	}
	if c.Gravity.Friction < 0 || c.Gravity.Friction > 1 {
		return fmt.Errorf("%w: gravity friction %v outside [0,1]", control.ErrParameterBounds, c.Gravity.Friction)
	}
	if c.Sling.Restitution < 0 || c.Sling.Restitution >= 1 {
		return fmt.Errorf("%w: slingshot restitution %v outside [0,1)", control.ErrParameterBounds, c.Sling.Restitution)
	}
	if c.Bounce.Restitution < 0 || c.Bounce.Restitution >= 1 {
		return fmt.Errorf("%w: bounce restitution %v outside [0,1)", control.ErrParameterBounds, c.Bounce.Restitution)
	}
	if c.Sling.MaxPull <= 0 {
		return fmt.Errorf("%w: max_pull must be positive", control.ErrParameterBounds)
	}
	if c.Isotope.DecayRate < 0 {
		return fmt.Errorf("%w: decay_rate must be non-negative", control.ErrParameterBounds)
	}
	if c.Circle.MinPoints < 1 {
		return fmt.Errorf("%w: min_points must be at least 1", control.ErrParameterBounds)
	}
	if c.Memory.MismatchDelayMS <= 0 {
		return fmt.Errorf("%w: mismatch_delay_ms must be positive", control.ErrParameterBounds)
	}
	return nil
}

// Apply pushes the tuning in c onto a constructed control.
func (c *Config) Apply(ctl control.Control) {
	switch w := ctl.(type) {
	case *controls.Gravity:
		w.Smoothing = c.Gravity.Smoothing
		w.G = c.Gravity.G
		w.Friction = c.Gravity.Friction
		w.BounceLoss = c.Gravity.BounceLoss
		w.TickEvery = time.Duration(c.Gravity.IntervalMS) * time.Millisecond
	case *controls.ColorMatch:
		w.Drift = c.Color.Drift
		w.TickEvery = time.Duration(c.Color.IntervalMS) * time.Millisecond
	case *controls.Slingshot:
		w.LaunchStrength = c.Sling.LaunchStrength
		w.Gravity = c.Sling.Gravity
		w.Restitution = c.Sling.Restitution
		w.MaxPull = c.Sling.MaxPull
	case *controls.Isotope:
		w.DecayRate = c.Isotope.DecayRate
		w.TickEvery = time.Duration(c.Isotope.IntervalMS) * time.Millisecond
	case *controls.Circle:
		w.MinPoints = c.Circle.MinPoints
		w.ClearAfter = time.Duration(c.Circle.ClearAfterMS) * time.Millisecond
	case *controls.Bounce:
		w.Gravity = c.Bounce.Gravity
		w.Restitution = c.Bounce.Restitution
		w.FlingScale = c.Bounce.FlingScale
		w.Threshold = c.Bounce.Threshold
	case *controls.Memory:
		w.MismatchDelay = time.Duration(c.Memory.MismatchDelayMS) * time.Millisecond
	}
}
