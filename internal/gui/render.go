package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/scene"
)

var (
	ColBody  = rl.NewColor(235, 235, 235, 255)
	ColTrail = rl.NewColor(120, 180, 255, 255)
)

// Renderer is the window sink. World coordinates are screen pixels; a
// resize widens the viewport instead of rescaling the scene.
type Renderer struct {
	Viewport      scene.Viewport
	Width, Height int
}

func NewRenderer(v scene.Viewport) *Renderer {
	return &Renderer{Viewport: v, Width: v.Width, Height: v.Height}
}

func (r *Renderer) Resize(w, h int) {
	r.Width, r.Height = w, h
	r.Viewport = scene.Viewport{Width: w, Height: h}
}

func (r *Renderer) Draw(f scene.Frame) {
	tf := r.Viewport.Fit(r.Width, r.Height)

	for _, trail := range f.Trails {
		for k := 1; k < len(trail); k++ {
			rl.DrawLineV(point(tf, trail[k-1].Point), point(tf, trail[k].Point), fade(ColTrail, trail[k].Brightness))
		}
		if len(trail) == 1 {
			rl.DrawPixelV(point(tf, trail[0].Point), fade(ColTrail, trail[0].Brightness))
		}
	}

	for _, d := range f.Disks {
		rl.DrawCircleV(point(tf, d.Center), float32(d.Radius*tf.Scale), ColBody)
	}
}

func point(tf scene.Transform, p dynamo.Vec2) rl.Vector2 {
	x, y := tf.Apply(p)
	return rl.NewVector2(float32(x), float32(y))
}

// fade scales the colour's channels by brightness against the background.
func fade(c rl.Color, brightness float64) rl.Color {
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(bg) + (float64(fg)-float64(bg))*brightness)
	}
	return rl.NewColor(mix(c.R, ColBg.R), mix(c.G, ColBg.G), mix(c.B, ColBg.B), c.A)
}
