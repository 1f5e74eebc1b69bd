package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/card"
	"github.com/san-kum/heartcloud/internal/heart"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS       = 60
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultFrames    = 120
	DefaultPointSize = 1.6
)

type Config struct {
	Seed     int64          `yaml:"seed"`
	Sampler  SamplerConfig  `yaml:"sampler"`
	Animator AnimatorConfig `yaml:"animator"`
	Card     CardConfig     `yaml:"card"`
	Render   RenderConfig   `yaml:"render"`
}

type SamplerConfig struct {
	Count      int     `yaml:"count"`
	Scale      float64 `yaml:"scale"`
	HalfExtent float64 `yaml:"half_extent"`
	Inner      string  `yaml:"inner"`
	Outer      string  `yaml:"outer"`
	Workers    int     `yaml:"workers"`
}

type AnimatorConfig struct {
	PulseSpeed     float64 `yaml:"pulse_speed"`
	PulseAmplitude float64 `yaml:"pulse_amplitude"`
	RotationSpeed  float64 `yaml:"rotation_speed"`
	Damping        float64 `yaml:"damping"`
	GainX          float64 `yaml:"gain_x"`
	GainY          float64 `yaml:"gain_y"`
	CameraZ        float64 `yaml:"camera_z"`
	Easing         string  `yaml:"easing"`
}

type CardConfig struct {
	AcceptColor    string   `yaml:"accept_color"`
	PulseBoost     float64  `yaml:"pulse_boost"`
	CharsPerSecond float64  `yaml:"chars_per_second"`
	Question       []string `yaml:"question"`
	Answer         []string `yaml:"answer"`
}

type RenderConfig struct {
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Frames     int     `yaml:"frames"`
	PointSize  float64 `yaml:"point_size"`
	Background string  `yaml:"background"`
}

func DefaultConfig() *Config {
	opts := card.DefaultOptions()
	return &Config{
		Sampler: SamplerConfig{
			Count:      heart.DefaultCount,
			Scale:      heart.DefaultScale,
			HalfExtent: heart.DefaultHalfExtent,
			Inner:      heart.DefaultInner.Hex(),
			Outer:      heart.DefaultOuter.Hex(),
			Workers:    1,
		},
		Animator: AnimatorConfig{
			PulseSpeed:     animator.DefaultPulseSpeed,
			PulseAmplitude: animator.DefaultPulseAmplitude,
			RotationSpeed:  animator.DefaultRotationSpeed,
			Damping:        animator.DefaultDamping,
			GainX:          animator.DefaultPointerGainX,
			GainY:          animator.DefaultPointerGainY,
			CameraZ:        animator.DefaultCameraZ,
			Easing:         animator.EasingFrame.String(),
		},
		Card: CardConfig{
			AcceptColor:    opts.AcceptColor.Hex(),
			PulseBoost:     opts.PulseBoost,
			CharsPerSecond: card.DefaultCharsPerSecond,
			Question:       opts.Question,
			Answer:         opts.Answer,
		},
		Render: RenderConfig{
			FPS:        DefaultFPS,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Frames:     DefaultFrames,
			PointSize:  DefaultPointSize,
			Background: "#0a0a0a",
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto decodes the file over cfg, so keys missing from the file keep
// the values cfg already holds.
func LoadInto(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// Validate checks every field a run depends on and joins all failures.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.SamplerConfig(); err != nil {
		errs = append(errs, err)
	}
	if c.Sampler.Workers < 1 {
		errs = append(errs, fmt.Errorf("sampler.workers must be >= 1, got %d", c.Sampler.Workers))
	}

	a := c.Animator
	if a.PulseSpeed <= 0 || math.IsNaN(a.PulseSpeed) || math.IsInf(a.PulseSpeed, 0) {
		errs = append(errs, fmt.Errorf("animator.pulse_speed must be positive and finite, got %v", a.PulseSpeed))
	}
	if a.Damping <= 0 || a.Damping >= 1 {
		errs = append(errs, fmt.Errorf("animator.damping must be in (0, 1), got %v", a.Damping))
	}
	if a.RotationSpeed < 0 {
		errs = append(errs, fmt.Errorf("animator.rotation_speed must be >= 0, got %v", a.RotationSpeed))
	}
	if a.PulseAmplitude < 0 || a.PulseAmplitude >= 1 {
		errs = append(errs, fmt.Errorf("animator.pulse_amplitude must be in [0, 1), got %v", a.PulseAmplitude))
	}
	if _, ok := animator.ParseEasingMode(a.Easing); !ok {
		errs = append(errs, fmt.Errorf("animator.easing must be frame or time, got %q", a.Easing))
	}

	if _, err := colorful.Hex(c.Card.AcceptColor); err != nil {
		errs = append(errs, fmt.Errorf("card.accept_color: %w", err))
	}
	if c.Card.PulseBoost <= 1 {
		errs = append(errs, fmt.Errorf("card.pulse_boost must be > 1, got %v", c.Card.PulseBoost))
	}

	r := c.Render
	if r.FPS <= 0 {
		errs = append(errs, fmt.Errorf("render.fps must be positive, got %d", r.FPS))
	}
	if r.Width <= 0 || r.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size must be positive, got %dx%d", r.Width, r.Height))
	}
	if _, err := colorful.Hex(r.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}

	return errors.Join(errs...)
}

// SamplerConfig converts the sampler section, parsing hex colors.
func (c *Config) SamplerConfig() (heart.SamplerConfig, error) {
	inner, err := colorful.Hex(c.Sampler.Inner)
	if err != nil {
		return heart.SamplerConfig{}, fmt.Errorf("sampler.inner: %w", err)
	}
	outer, err := colorful.Hex(c.Sampler.Outer)
	if err != nil {
		return heart.SamplerConfig{}, fmt.Errorf("sampler.outer: %w", err)
	}
	sc := heart.SamplerConfig{
		Count:             c.Sampler.Count,
		Scale:             c.Sampler.Scale,
		Inner:             inner,
		Outer:             outer,
		HalfExtent:        c.Sampler.HalfExtent,
		MaxAttemptsFactor: heart.DefaultMaxAttemptsFactor,
	}
	if err := sc.Validate(); err != nil {
		return heart.SamplerConfig{}, err
	}
	return sc, nil
}

func (c *Config) AnimatorParams() *animator.Params {
	p := animator.DefaultParams()
	p.SetPulseSpeed(c.Animator.PulseSpeed)
	p.PulseAmplitude = c.Animator.PulseAmplitude
	p.RotationSpeed = c.Animator.RotationSpeed
	p.Damping = c.Animator.Damping
	p.GainX = c.Animator.GainX
	p.GainY = c.Animator.GainY
	p.CameraZ = c.Animator.CameraZ
	p.Easing, _ = animator.ParseEasingMode(c.Animator.Easing)
	return p
}

func (c *Config) CardOptions() card.Options {
	opts := card.DefaultOptions()
	if col, err := colorful.Hex(c.Card.AcceptColor); err == nil {
		opts.AcceptColor = col
	}
	opts.PulseBoost = c.Card.PulseBoost
	if len(c.Card.Question) > 0 {
		opts.Question = c.Card.Question
	}
	if len(c.Card.Answer) > 0 {
		opts.Answer = c.Card.Answer
	}
	return opts
}

func (c *Config) BackgroundColor() colorful.Color {
	col, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
