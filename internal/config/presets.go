package config

// Presets are named tunings for quick experiments from the CLI.
var Presets = map[string]func(*Config){
	// The stock experience.
	"default": func(c *Config) {},

	// Everything falls slower and bounces longer.
	"moon": func(c *Config) {
		c.Gravity.G = 0.003
		c.Sling.Gravity = 0.04
		c.Sling.Restitution = 0.95
		c.Bounce.Gravity = 0.2
		c.Bounce.Restitution = 0.92
	},

	// The isotope barely decays and colors barely drift.
	"merciful": func(c *Config) {
		c.Isotope.DecayRate = 0.05
		c.Color.Drift = 1
		c.Bounce.Threshold = 0.5
	},

	// Twitchy targets and fast decay.
	"cruel": func(c *Config) {
		c.Isotope.DecayRate = 1.0
		c.Color.Drift = 6
		c.Gravity.Friction = 0.999
	},
}

// Preset returns the named preset applied on top of defaults, or nil
// when the name is unknown.
func Preset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}
