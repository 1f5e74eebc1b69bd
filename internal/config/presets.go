package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"dense": func(c *Config) {
		c.Sampler.Count = 20000
		c.Sampler.Workers = 4
		c.Render.PointSize = 1.0
	},
	"calm": func(c *Config) {
		c.Animator.PulseSpeed = 1.5
		c.Animator.RotationSpeed = 0.002
		c.Animator.Damping = 0.02
	},
	"racing": func(c *Config) {
		c.Animator.PulseSpeed = 8.0
		c.Animator.PulseAmplitude = 0.08
		c.Animator.RotationSpeed = 0.02
		c.Card.PulseBoost = 3.0
	},
	"smooth": func(c *Config) {
		c.Animator.Easing = "time"
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil if no such preset exists.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
