package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/gravsim/internal/scene"
)

const (
	bodyColor  = "#ebebeb"
	trailColor = "#78b4ff"
)

// FrameToSVG renders one frame as a standalone SVG document of the given
// pixel size. Each trail segment carries the brightness of its newer end as
// stroke opacity.
func FrameToSVG(f scene.Frame, v scene.Viewport, width, height int) string {
	tf := v.Fit(width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="%s" stroke-width="1.5" fill="none">
`, width, height, width, height, trailColor))

	for _, trail := range f.Trails {
		for k := 1; k < len(trail); k++ {
			x0, y0 := tf.Apply(trail[k-1].Point)
			x1, y1 := tf.Apply(trail[k].Point)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-opacity="%.2f"/>
`, x0, y0, x1, y1, trail[k].Brightness))
		}
	}

	sb.WriteString(fmt.Sprintf("</g>\n<g fill=\"%s\">\n", bodyColor))
	for _, d := range f.Disks {
		x, y := tf.Apply(d.Center)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, x, y, d.Radius*tf.Scale))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// SVGSink writes every frame it receives to W as a separate document.
type SVGSink struct {
	W             io.Writer
	Viewport      scene.Viewport
	Width, Height int
	err           error
}

func NewSVGSink(w io.Writer, v scene.Viewport) *SVGSink {
	return &SVGSink{W: w, Viewport: v, Width: v.Width, Height: v.Height}
}

func (s *SVGSink) Draw(f scene.Frame) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.W, FrameToSVG(f, s.Viewport, s.Width, s.Height))
}

// Err returns the first write error, if any.
func (s *SVGSink) Err() error { return s.err }
