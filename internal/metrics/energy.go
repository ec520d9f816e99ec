package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

// EnergyDrift tracks the largest relative departure of total energy from
// its seeded baseline, or the first observed tick when never seeded. Collisions are elastic, so drift
// comes from the integrator and the overlap correction.
type EnergyDrift struct {
	name          string
	g, softening  float64
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(g, softening float64) *EnergyDrift {
	return &EnergyDrift{
		name:      "energy_drift",
		g:         g,
		softening: softening,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

// Seed sets the baseline to the energy of w before any tick is taken.
func (e *EnergyDrift) Seed(w *dynamo.World, t float64) {
	e.initialEnergy = physics.Energy(w, e.g, e.softening)
	e.currentEnergy = e.initialEnergy
	e.samples = 1
}

func (e *EnergyDrift) Observe(w *dynamo.World, contacts []dynamo.Contact, t float64) {
	energy := physics.Energy(w, e.g, e.softening)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64   { return e.maxDrift }
func (e *EnergyDrift) Current() float64 { return e.currentEnergy }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift reports the largest change in |p| since the seeded state
// or the first tick.
type MomentumDrift struct {
	initial dynamo.Vec2
	maxDiff float64
	samples int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Seed(w *dynamo.World, t float64) {
	m.initial = physics.Momentum(w)
	m.samples = 1
}

func (m *MomentumDrift) Observe(w *dynamo.World, contacts []dynamo.Contact, t float64) {
	p := physics.Momentum(w)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDiff = math.Max(m.maxDiff, p.Sub(m.initial).Len())
}

func (m *MomentumDrift) Value() float64 { return m.maxDiff }

func (m *MomentumDrift) Reset() {
	m.initial = dynamo.Vec2{}
	m.maxDiff = 0
	m.samples = 0
}
