package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
	"github.com/san-kum/gravsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.016
	DefaultDuration = 10.0
	DefaultWidth    = 800
	DefaultHeight   = 600
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Name        string         `yaml:"name,omitempty"`
	Gravity     float64        `yaml:"gravity"`
	Softening   float64        `yaml:"softening"`
	MaxDt       float64        `yaml:"max_dt"`
	TrailLength int            `yaml:"trail_length"`
	Dt          float64        `yaml:"dt"`
	Duration    float64        `yaml:"duration"`
	Viewport    scene.Viewport `yaml:"viewport"`
	Bodies      []BodyConfig   `yaml:"bodies"`
}

type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

// DefaultConfig is the three-body system the visualization opens with.
func DefaultConfig() *Config {
	return &Config{
		Name:        "threebody",
		Gravity:     physics.DefaultG,
		Softening:   physics.DefaultSoftening,
		MaxDt:       sim.DefaultMaxDt,
		TrailLength: dynamo.DefaultTrailLength,
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		Viewport:    scene.Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Bodies: []BodyConfig{
			{X: 400, Y: 300, VX: 0, VY: 0, Mass: 500000, Radius: 30},
			{X: 500, Y: 300, VX: 0, VY: -200, Mass: 1000, Radius: 10},
			{X: 200, Y: 400, VX: 0, VY: -90, Mass: 2000, Radius: 15},
		},
	}
}

// Load reads a YAML file over the defaults. A file that lists bodies
// replaces the default roster entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Bodies) == 0 {
		cfg.Bodies = DefaultConfig().Bodies
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"softening", c.Softening},
		{"max_dt", c.MaxDt},
		{"dt", c.Dt},
		{"duration", c.Duration},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.Gravity < 0:
		return fmt.Errorf("%w: gravity %v", ErrInvalidConfig, c.Gravity)
	case c.Softening < 0:
		return fmt.Errorf("%w: softening %v", ErrInvalidConfig, c.Softening)
	case c.MaxDt < 0:
		return fmt.Errorf("%w: max_dt %v", ErrInvalidConfig, c.MaxDt)
	case c.TrailLength <= 0:
		return fmt.Errorf("%w: trail_length %d", ErrInvalidConfig, c.TrailLength)
	case c.Dt <= 0 || c.Duration <= 0:
		return fmt.Errorf("%w: dt %v duration %v", ErrInvalidConfig, c.Dt, c.Duration)
	case len(c.Bodies) == 0:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, dynamo.ErrEmptyRoster)
	}
	for i, b := range c.Bodies {
		if b.Mass <= 0 || b.Radius <= 0 ||
			!finite(b.Mass) || !finite(b.Radius) ||
			!finite(b.X) || !finite(b.Y) || !finite(b.VX) || !finite(b.VY) {
			return fmt.Errorf("%w: body %d: %w", ErrInvalidConfig, i, dynamo.ErrInvalidBody)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// World builds a fresh roster from the configured bodies.
func (c *Config) World() (*dynamo.World, error) {
	bodies := make([]dynamo.Body, 0, len(c.Bodies))
	for i, bc := range c.Bodies {
		b, err := dynamo.NewBody(
			dynamo.Vec2{X: bc.X, Y: bc.Y},
			dynamo.Vec2{X: bc.VX, Y: bc.VY},
			bc.Mass, bc.Radius, c.TrailLength,
		)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	return dynamo.NewWorld(bodies...)
}

func (c *Config) Params() sim.Params {
	return sim.Params{G: c.Gravity, Softening: c.Softening, MaxDt: c.MaxDt}
}

func (c *Config) RunConfig() sim.Config {
	return sim.Config{Dt: c.Dt, Duration: c.Duration, SampleEvery: 1, ValidateState: true}
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Bodies = append([]BodyConfig(nil), c.Bodies...)
	return &out
}
