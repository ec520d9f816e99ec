package dynamo

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) IsFinite() bool       { return isFinite(v.X) && isFinite(v.Y) }
func (v Vec2) String() string       { return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y) }

// Body is a point mass with a collision radius. Mass and radius are fixed
// at construction; position and velocity are mutated by the physics passes.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Trail  *Trail
	mass   float64
	radius float64
}

// NewBody validates the physical parameters and allocates a trail holding
// at most trailLen points.
func NewBody(pos, vel Vec2, mass, radius float64, trailLen int) (Body, error) {
	if !isFinite(mass) || mass <= 0 {
		return Body{}, fmt.Errorf("%w: mass %v", ErrInvalidBody, mass)
	}
	if !isFinite(radius) || radius <= 0 {
		return Body{}, fmt.Errorf("%w: radius %v", ErrInvalidBody, radius)
	}
	if !pos.IsFinite() || !vel.IsFinite() {
		return Body{}, fmt.Errorf("%w: non-finite initial state", ErrInvalidBody)
	}
	trail, err := NewTrail(trailLen)
	if err != nil {
		return Body{}, err
	}
	return Body{Pos: pos, Vel: vel, Trail: trail, mass: mass, radius: radius}, nil
}

func (b *Body) Mass() float64   { return b.mass }
func (b *Body) Radius() float64 { return b.radius }

// Momentum returns mass * velocity.
func (b *Body) Momentum() Vec2 { return b.Vel.Scale(b.mass) }

// World is the body roster for one run. Bodies are addressed by index so
// pairwise passes can mutate two entries without aliasing.
type World struct {
	Bodies []Body
}

func NewWorld(bodies ...Body) (*World, error) {
	if len(bodies) == 0 {
		return nil, ErrEmptyRoster
	}
	return &World{Bodies: bodies}, nil
}

func (w *World) Len() int { return len(w.Bodies) }

// IsFinite reports whether every position and velocity is finite.
func (w *World) IsFinite() bool {
	for i := range w.Bodies {
		if !w.Bodies[i].Pos.IsFinite() || !w.Bodies[i].Vel.IsFinite() {
			return false
		}
	}
	return true
}

// Clone deep-copies the roster including trail contents.
func (w *World) Clone() *World {
	c := &World{Bodies: make([]Body, len(w.Bodies))}
	for i, b := range w.Bodies {
		c.Bodies[i] = b
		c.Bodies[i].Trail = b.Trail.Clone()
	}
	return c
}

// Contact describes one overlap resolved by the collision pass.
type Contact struct {
	I, J    int
	Normal  Vec2
	Overlap float64
	Impulse float64
}

// BodyState is a flat snapshot of one body, used by headless runs and exports.
type BodyState struct {
	X, Y, VX, VY float64
}

func (w *World) Snapshot() []BodyState {
	out := make([]BodyState, len(w.Bodies))
	for i := range w.Bodies {
		b := &w.Bodies[i]
		out[i] = BodyState{X: b.Pos.X, Y: b.Pos.Y, VX: b.Vel.X, VY: b.Vel.Y}
	}
	return out
}

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(w *World, contacts []Contact, t float64)
	Value() float64
	Reset()
}

// Seeder is implemented by metrics that measure change from the state
// before the first tick.
type Seeder interface {
	Seed(w *World, t float64)
}

// Observer is notified after every completed tick.
type Observer interface {
	OnStep(w *World, contacts []Contact, t float64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
