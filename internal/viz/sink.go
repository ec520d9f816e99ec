package viz

import (
	"math"

	"github.com/san-kum/gravsim/internal/scene"
)

// maxCoord bounds projected coordinates before they are converted to int.
const maxCoord = 1 << 20

// CanvasSink draws frames into a Canvas, fitting the viewport to the canvas
// resolution.
type CanvasSink struct {
	Canvas   *Canvas
	Viewport scene.Viewport
}

func NewCanvasSink(c *Canvas, v scene.Viewport) *CanvasSink {
	return &CanvasSink{Canvas: c, Viewport: v}
}

func (s *CanvasSink) Draw(f scene.Frame) {
	c := s.Canvas
	c.Clear()
	w, h := c.PixelSize()
	tf := s.Viewport.Fit(w, h)

	for _, trail := range f.Trails {
		if len(trail) == 1 {
			x, y := tf.Apply(trail[0].Point)
			if inRange(x, y) {
				c.Plot(round(x), round(y), trail[0].Brightness)
			}
			continue
		}
		for k := 1; k < len(trail); k++ {
			x0, y0 := tf.Apply(trail[k-1].Point)
			x1, y1 := tf.Apply(trail[k].Point)
			if !inRange(x0, y0) || !inRange(x1, y1) || offCanvas(x0, y0, x1, y1, w, h) {
				continue
			}
			c.DrawLine(round(x0), round(y0), round(x1), round(y1), trail[k].Brightness)
		}
	}

	for _, d := range f.Disks {
		x, y := tf.Apply(d.Center)
		if !inRange(x, y) {
			continue
		}
		c.FillCircle(round(x), round(y), round(d.Radius*tf.Scale))
	}
}

func round(v float64) int { return int(math.Round(v)) }

func inRange(x, y float64) bool {
	return math.Abs(x) < maxCoord && math.Abs(y) < maxCoord
}

// offCanvas rejects segments lying entirely beyond one edge.
func offCanvas(x0, y0, x1, y1 float64, w, h int) bool {
	fw, fh := float64(w), float64(h)
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= fw && x1 >= fw) || (y0 >= fh && y1 >= fh)
}
