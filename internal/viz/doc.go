// Package viz renders a running simulation in the terminal.
//
// [CanvasSink] is a scene sink that rasterises frames onto a braille
// [Canvas]; trail cells keep their brightness and render as grey levels.
// [Model] is the Bubble Tea program around it.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	T     - Cycle color themes
//	Q     - Quit
package viz
