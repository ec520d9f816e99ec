package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	DefaultG         = 6.0
	DefaultSoftening = 1e-6
)

// ApplyGravity adds one tick of pairwise gravitational acceleration to every
// body's velocity. Each unordered pair is evaluated once and the force is
// applied with opposite sign to both members. Coincident bodies are skipped.
func ApplyGravity(w *dynamo.World, g, softening, dt float64) {
	bodies := w.Bodies
	n := len(bodies)

	for i := 0; i < n; i++ {
		bi := &bodies[i]
		for j := i + 1; j < n; j++ {
			bj := &bodies[j]

			d := bj.Pos.Sub(bi.Pos)
			dist := d.Len()
			if dist == 0 {
				continue
			}
			normal := d.Scale(1 / dist)

			f := g * bi.Mass() * bj.Mass() / (dist*dist + softening)

			bi.Vel = bi.Vel.Add(normal.Scale(f / bi.Mass() * dt))
			bj.Vel = bj.Vel.Sub(normal.Scale(f / bj.Mass() * dt))
		}
	}
}

func KineticEnergy(w *dynamo.World) float64 {
	ke := 0.0
	for i := range w.Bodies {
		b := &w.Bodies[i]
		ke += 0.5 * b.Mass() * b.Vel.Dot(b.Vel)
	}
	return ke
}

// PotentialEnergy uses the same softened separation as ApplyGravity.
func PotentialEnergy(w *dynamo.World, g, softening float64) float64 {
	pe := 0.0
	for i := range w.Bodies {
		bi := &w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := &w.Bodies[j]
			d := bj.Pos.Sub(bi.Pos)
			r := math.Sqrt(d.Dot(d) + softening)
			pe -= g * bi.Mass() * bj.Mass() / r
		}
	}
	return pe
}

func Energy(w *dynamo.World, g, softening float64) float64 {
	return KineticEnergy(w) + PotentialEnergy(w, g, softening)
}

func Momentum(w *dynamo.World) dynamo.Vec2 {
	var p dynamo.Vec2
	for i := range w.Bodies {
		p = p.Add(w.Bodies[i].Momentum())
	}
	return p
}

func AngularMomentum(w *dynamo.World) float64 {
	L := 0.0
	for i := range w.Bodies {
		b := &w.Bodies[i]
		L += b.Mass() * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	}
	return L
}
