package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	DefaultMaxDt = 0.05

	// MaxSteps bounds a headless run so Duration/Dt always fits an int.
	MaxSteps = 1 << 28

	// sampleHint caps the preallocated sample buffers.
	sampleHint = 4096
)

// Params are the physical constants of a run.
type Params struct {
	G         float64
	Softening float64
	MaxDt     float64
}

func DefaultParams() Params {
	return Params{
		G:         physics.DefaultG,
		Softening: physics.DefaultSoftening,
		MaxDt:     DefaultMaxDt,
	}
}

// Config controls a headless fixed-step run.
type Config struct {
	Dt            float64
	Duration      float64
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.016,
		Duration:      10.0,
		SampleEvery:   1,
		ValidateState: true,
	}
}

func (c Config) Steps() int {
	return int(c.Duration/c.Dt + 1e-9)
}

func (c Config) validate() error {
	if math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) || c.Dt <= 0 {
		return fmt.Errorf("%w: dt %v", dynamo.ErrInvalidStep, c.Dt)
	}
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) || c.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", dynamo.ErrInvalidStep, c.Duration)
	}
	if n := c.Duration / c.Dt; n > MaxSteps {
		return fmt.Errorf("%w: %.3g steps exceeds %d", dynamo.ErrInvalidStep, n, MaxSteps)
	}
	return nil
}

type Result struct {
	Times      []float64
	States     [][]dynamo.BodyState
	Metrics    map[string]float64
	Contacts   int
	StepsTaken int
}
