// Package scene defines the geometry handed to render sinks once a tick's
// physics has completed. Sinks only read a [Frame]; they never see the world.
package scene

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	MinBrightness = 0.3
	MaxBrightness = 1.0
)

type Disk struct {
	Center dynamo.Vec2
	Radius float64
}

type TrailVertex struct {
	Point      dynamo.Vec2
	Brightness float64
}

// Frame is everything a sink needs to draw one tick: a filled disk per body
// and, per body, its trail ordered oldest first.
type Frame struct {
	Disks  []Disk
	Trails [][]TrailVertex
}

// Sink draws frames. Implementations are assumed always available.
type Sink interface {
	Draw(f Frame)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Frame)

func (fn SinkFunc) Draw(f Frame) { fn(f) }

// Brightness ramps linearly from MinBrightness for the oldest of n points to
// MaxBrightness for the newest. A trail of fewer than two points is drawn at
// full brightness.
func Brightness(i, n int) float64 {
	if n < 2 {
		return MaxBrightness
	}
	return MinBrightness + (MaxBrightness-MinBrightness)*float64(i)/float64(n-1)
}

func Build(w *dynamo.World) Frame {
	f := Frame{
		Disks:  make([]Disk, len(w.Bodies)),
		Trails: make([][]TrailVertex, len(w.Bodies)),
	}
	for i := range w.Bodies {
		b := &w.Bodies[i]
		f.Disks[i] = Disk{Center: b.Pos, Radius: b.Radius()}

		n := b.Trail.Len()
		trail := make([]TrailVertex, n)
		for k := 0; k < n; k++ {
			trail[k] = TrailVertex{Point: b.Trail.At(k), Brightness: Brightness(k, n)}
		}
		f.Trails[i] = trail
	}
	return f
}

// Viewport is the world-space rectangle, anchored at the origin, that a sink
// presents. It is passed to sinks explicitly and updated on window resize.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Transform maps world coordinates to a raster.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func (t Transform) Apply(p dynamo.Vec2) (float64, float64) {
	return p.X*t.Scale + t.OffsetX, p.Y*t.Scale + t.OffsetY
}

// Fit returns the uniform-scale transform that centres the viewport inside a
// w×h raster. A degenerate viewport maps with unit scale.
func (v Viewport) Fit(w, h int) Transform {
	if v.Width <= 0 || v.Height <= 0 {
		return Transform{Scale: 1}
	}
	s := math.Min(float64(w)/float64(v.Width), float64(h)/float64(v.Height))
	return Transform{
		Scale:   s,
		OffsetX: (float64(w) - float64(v.Width)*s) / 2,
		OffsetY: (float64(h) - float64(v.Height)*s) / 2,
	}
}
