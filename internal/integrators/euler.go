package integrators

import "github.com/san-kum/gravsim/internal/dynamo"

// Integrator advances body positions from their already-updated velocities.
type Integrator interface {
	Name() string
	Step(w *dynamo.World, dt float64)
}

// SemiImplicitEuler moves each body by its current velocity. Run after the
// velocity update, this is the symplectic Euler scheme.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Name() string { return "euler" }

func (e *SemiImplicitEuler) Step(w *dynamo.World, dt float64) {
	for i := range w.Bodies {
		b := &w.Bodies[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}
