// Package dynamo provides the data model shared by the simulation passes.
//
//   - [Vec2]: 2D vector
//   - [Body]: point mass with immutable mass and radius and a bounded [Trail]
//   - [World]: index-addressed body roster owned by the frame loop
//   - [Contact]: one overlap resolved by the collision pass
//   - [Metric], [Observer]: hooks run after each tick
//
// # Example
//
//	sun, _ := dynamo.NewBody(dynamo.Vec2{X: 400, Y: 300}, dynamo.Vec2{}, 500000, 30, 100)
//	moon, _ := dynamo.NewBody(dynamo.Vec2{X: 500, Y: 300}, dynamo.Vec2{Y: -200}, 1000, 10, 100)
//	w, _ := dynamo.NewWorld(sun, moon)
//
// # Thread Safety
//
// A World is mutated by exactly one goroutine, the frame loop. Readers
// (sinks, observers) run after all mutation for the tick has completed.
package dynamo
