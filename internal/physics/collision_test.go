package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

func body(x, y, vx, vy, mass, radius float64) dynamo.Body {
	b, err := dynamo.NewBody(dynamo.Vec2{X: x, Y: y}, dynamo.Vec2{X: vx, Y: vy}, mass, radius, 10)
	Expect(err).NotTo(HaveOccurred())
	return b
}

func world(bodies ...dynamo.Body) *dynamo.World {
	w, err := dynamo.NewWorld(bodies...)
	Expect(err).NotTo(HaveOccurred())
	return w
}

func dist(w *dynamo.World, i, j int) float64 {
	return w.Bodies[j].Pos.Sub(w.Bodies[i].Pos).Len()
}

var _ = Describe("ResolveCollisions", func() {
	const tol = 1e-9

	Context("two equal bodies meeting head-on", func() {
		var w *dynamo.World
		var contacts []dynamo.Contact

		BeforeEach(func() {
			w = world(
				body(0, 0, 50, 0, 1000, 10),
				body(15, 0, -50, 0, 1000, 10),
			)
			contacts = physics.ResolveCollisions(w)
		})

		It("reports a single contact along +x", func() {
			Expect(contacts).To(HaveLen(1))
			Expect(contacts[0].I).To(Equal(0))
			Expect(contacts[0].J).To(Equal(1))
			Expect(contacts[0].Overlap).To(BeNumerically("~", 5, tol))
			Expect(contacts[0].Normal.X).To(BeNumerically("~", 1, tol))
			Expect(contacts[0].Impulse).To(BeNumerically("~", 1000*100, 1e-6))
		})

		It("pushes each body out by half the overlap", func() {
			Expect(w.Bodies[0].Pos.X).To(BeNumerically("~", -2.5, tol))
			Expect(w.Bodies[1].Pos.X).To(BeNumerically("~", 17.5, tol))
			Expect(dist(w, 0, 1)).To(BeNumerically(">=", 20-tol))
		})

		It("swaps the velocities", func() {
			Expect(w.Bodies[0].Vel.X).To(BeNumerically("~", -50, tol))
			Expect(w.Bodies[1].Vel.X).To(BeNumerically("~", 50, tol))
			Expect(w.Bodies[0].Vel.Y).To(BeNumerically("~", 0, tol))
		})
	})

	Context("an oblique contact", func() {
		It("leaves the tangential velocity untouched", func() {
			w := world(
				body(0, 0, 10, 7, 1000, 10),
				body(0, 12, 3, -5, 1000, 10),
			)
			physics.ResolveCollisions(w)

			// normal is +y, so x components are tangential
			Expect(w.Bodies[0].Vel.X).To(BeNumerically("~", 10, tol))
			Expect(w.Bodies[1].Vel.X).To(BeNumerically("~", 3, tol))
			Expect(w.Bodies[0].Vel.Y).To(BeNumerically("~", -5, tol))
			Expect(w.Bodies[1].Vel.Y).To(BeNumerically("~", 7, tol))
		})
	})

	Context("bodies of different mass", func() {
		It("conserves momentum and kinetic energy", func() {
			w := world(
				body(0, 0, 40, 10, 500000, 30),
				body(35, 5, -200, 0, 1000, 10),
			)
			p0 := physics.Momentum(w)
			ke0 := physics.KineticEnergy(w)

			Expect(physics.ResolveCollisions(w)).To(HaveLen(1))

			p1 := physics.Momentum(w)
			Expect(p1.X).To(BeNumerically("~", p0.X, 1e-6))
			Expect(p1.Y).To(BeNumerically("~", p0.Y, 1e-6))
			Expect(physics.KineticEnergy(w)).To(BeNumerically("~", ke0, 1e-6*ke0))
			Expect(dist(w, 0, 1)).To(BeNumerically(">=", 40-1e-9))
		})

		It("separates symmetrically rather than by mass", func() {
			w := world(
				body(0, 0, 0, 0, 500000, 30),
				body(36, 0, 0, 0, 1000, 10),
			)
			physics.ResolveCollisions(w)

			Expect(w.Bodies[0].Pos.X).To(BeNumerically("~", -2, tol))
			Expect(w.Bodies[1].Pos.X).To(BeNumerically("~", 38, tol))
		})
	})

	Context("non-overlapping or coincident pairs", func() {
		It("ignores touching bodies", func() {
			w := world(
				body(0, 0, 1, 0, 10, 10),
				body(20, 0, -1, 0, 10, 10),
			)
			Expect(physics.ResolveCollisions(w)).To(BeEmpty())
			Expect(w.Bodies[0].Vel.X).To(Equal(1.0))
		})

		It("skips coincident centres", func() {
			w := world(
				body(5, 5, 1, 2, 10, 10),
				body(5, 5, 3, 4, 10, 10),
			)
			Expect(physics.ResolveCollisions(w)).To(BeEmpty())
			Expect(w.Bodies[0].Pos).To(Equal(dynamo.Vec2{X: 5, Y: 5}))
			Expect(w.Bodies[1].Vel).To(Equal(dynamo.Vec2{X: 3, Y: 4}))
		})
	})

	Context("a three-body cluster", func() {
		It("resolves each pair once in a single pass", func() {
			w := world(
				body(0, 0, 0, 0, 10, 10),
				body(15, 0, 0, 0, 10, 10),
				body(30, 0, 0, 0, 10, 10),
			)
			contacts := physics.ResolveCollisions(w)

			Expect(contacts).To(HaveLen(2))
			Expect(w.Bodies[0].Pos.X).To(BeNumerically("~", -2.5, tol))
			Expect(w.Bodies[1].Pos.X).To(BeNumerically("~", 13.75, tol))
			Expect(w.Bodies[2].Pos.X).To(BeNumerically("~", 33.75, tol))
			// the second correction re-opens the first pair
			Expect(dist(w, 0, 1)).To(BeNumerically("<", 20))
		})
	})
})
