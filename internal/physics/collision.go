package physics

import "github.com/san-kum/gravsim/internal/dynamo"

// ResolveCollisions separates every overlapping pair and exchanges the
// normal components of their velocities as a 1D elastic collision.
//
// Pairs are resolved independently in a single pass. Each body of a pair is
// pushed by half the overlap regardless of mass, so clusters of three or more
// bodies can end the pass still overlapping.
func ResolveCollisions(w *dynamo.World) []dynamo.Contact {
	var contacts []dynamo.Contact
	bodies := w.Bodies
	n := len(bodies)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c, ok := resolvePair(&bodies[i], &bodies[j]); ok {
				c.I, c.J = i, j
				contacts = append(contacts, c)
			}
		}
	}
	return contacts
}

func resolvePair(a, b *dynamo.Body) (dynamo.Contact, bool) {
	d := b.Pos.Sub(a.Pos)
	dist := d.Len()
	if dist == 0 {
		return dynamo.Contact{}, false
	}

	overlap := a.Radius() + b.Radius() - dist
	if overlap <= 0 {
		return dynamo.Contact{}, false
	}
	normal := d.Scale(1 / dist)

	sep := normal.Scale(overlap / 2)
	a.Pos = a.Pos.Sub(sep)
	b.Pos = b.Pos.Add(sep)

	van := a.Vel.Dot(normal)
	vbn := b.Vel.Dot(normal)
	ma, mb := a.Mass(), b.Mass()

	vanAfter := ((ma-mb)*van + 2*mb*vbn) / (ma + mb)
	vbnAfter := ((mb-ma)*vbn + 2*ma*van) / (ma + mb)

	a.Vel = a.Vel.Add(normal.Scale(vanAfter - van))
	b.Vel = b.Vel.Add(normal.Scale(vbnAfter - vbn))

	impulse := ma * (vanAfter - van)
	if impulse < 0 {
		impulse = -impulse
	}
	return dynamo.Contact{Normal: normal, Overlap: overlap, Impulse: impulse}, true
}
