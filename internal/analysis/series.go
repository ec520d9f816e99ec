package analysis

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/sim"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisVX
	AxisVY
)

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "vx":
		return AxisVX, nil
	case "vy":
		return AxisVY, nil
	}
	return 0, fmt.Errorf("analysis: unknown axis %q", s)
}

// BodySeries extracts one coordinate of one body from every sampled state.
func BodySeries(r *sim.Result, body int, axis Axis) ([]float64, error) {
	if len(r.States) == 0 {
		return nil, ErrTooShort
	}
	if body < 0 || body >= len(r.States[0]) {
		return nil, fmt.Errorf("analysis: body %d out of range [0,%d)", body, len(r.States[0]))
	}

	out := make([]float64, len(r.States))
	for i, states := range r.States {
		s := states[body]
		switch axis {
		case AxisX:
			out[i] = s.X
		case AxisY:
			out[i] = s.Y
		case AxisVX:
			out[i] = s.VX
		case AxisVY:
			out[i] = s.VY
		}
	}
	return out, nil
}

// SampleInterval is the time between consecutive sampled states.
func SampleInterval(r *sim.Result) float64 {
	if len(r.Times) < 2 {
		return 0
	}
	return r.Times[1] - r.Times[0]
}
