// Package analysis extracts periodic structure from simulated trajectories.
//
// [BodySeries] pulls one coordinate of a body out of a [sim.Result] and
// [DominantPeriod] finds its strongest oscillation with an FFT:
//
//	xs, _ := analysis.BodySeries(res, 1, analysis.AxisX)
//	period, err := analysis.DominantPeriod(xs, analysis.SampleInterval(res))
package analysis
