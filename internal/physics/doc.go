// Package physics implements the per-tick passes that mutate a [dynamo.World]:
//
//   - [ApplyGravity]: softened pairwise attraction, velocity update only
//   - [ResolveCollisions]: circle overlap correction and elastic response
//
// Both passes are O(n²) over unordered pairs and skip coincident bodies
// rather than producing NaN. Neither logs nor returns an error.
//
// The energy and momentum helpers are diagnostics for metrics and tests:
//
//	before := physics.Momentum(w)
//	physics.ApplyGravity(w, physics.DefaultG, physics.DefaultSoftening, dt)
//	after := physics.Momentum(w)
package physics
