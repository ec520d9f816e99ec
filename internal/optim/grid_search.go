// Package optim sweeps simulation parameters over a grid.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/sim"
)

// ErrMissingMetric is recorded on a trial whose result lacks the metric
// being minimised.
var ErrMissingMetric = errors.New("optim: metric not reported")

// RunFunc runs one simulation with the given parameter values.
type RunFunc func(ctx context.Context, params map[string]float64) (*sim.Result, error)

// Trial is one grid point and the metric it produced.
type Trial struct {
	Params map[string]float64
	Value  float64
	Err    error
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search runs every combination and returns the one minimising metricName
// along with all trials in grid order. Failed or non-finite trials are
// recorded but never chosen. The only error returned is ctx's.
func (g *GridSearch) Search(ctx context.Context, run RunFunc, metricName string) (map[string]float64, float64, []Trial, error) {
	best := math.Inf(1)
	var bestParams map[string]float64
	var trials []Trial

	err := g.searchRecursive(ctx, 0, make(map[string]float64), run, metricName, &trials)
	for _, tr := range trials {
		if tr.Err == nil && !math.IsNaN(tr.Value) && !math.IsInf(tr.Value, 0) && tr.Value < best {
			best = tr.Value
			bestParams = tr.Params
		}
	}
	return bestParams, best, trials, err
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	run RunFunc,
	metricName string,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		tr := Trial{Params: current}
		result, err := run(ctx, current)
		if err != nil {
			tr.Err = err
		} else if v, ok := result.Metrics[metricName]; ok {
			tr.Value = v
		} else {
			tr.Err = fmt.Errorf("%w: %q", ErrMissingMetric, metricName)
		}
		*trials = append(*trials, tr)
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, run, metricName, trials); err != nil {
			return err
		}
	}
	return nil
}
