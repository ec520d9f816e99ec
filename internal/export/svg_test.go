package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/scene"
)

func testFrame(t *testing.T) scene.Frame {
	t.Helper()
	a, _ := dynamo.NewBody(dynamo.Vec2{X: 400, Y: 300}, dynamo.Vec2{}, 1, 30, 10)
	b, _ := dynamo.NewBody(dynamo.Vec2{X: 100, Y: 100}, dynamo.Vec2{}, 1, 10, 10)
	for _, p := range []dynamo.Vec2{{X: 70, Y: 100}, {X: 80, Y: 100}, {X: 90, Y: 100}} {
		b.Trail.Push(p)
	}
	w, err := dynamo.NewWorld(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return scene.Build(w)
}

func TestFrameToSVG(t *testing.T) {
	svg := FrameToSVG(testFrame(t), scene.Viewport{Width: 800, Height: 600}, 400, 300)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not a complete document: %q", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if n := strings.Count(svg, "<line"); n != 2 {
		t.Errorf("expected 2 trail segments, got %d", n)
	}
	// Half-size output: body 0 lands at (200,150) with radius 15.
	if !strings.Contains(svg, `<circle cx="200.0" cy="150.0" r="15.0"/>`) {
		t.Error("body not scaled into the viewport")
	}
	if !strings.Contains(svg, `stroke-opacity="0.65"`) || !strings.Contains(svg, `stroke-opacity="1.00"`) {
		t.Error("trail brightness not carried as opacity")
	}
}

type failWriter struct{ calls int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestSVGSink(t *testing.T) {
	var sb strings.Builder
	sink := NewSVGSink(&sb, scene.Viewport{Width: 800, Height: 600})
	sink.Draw(testFrame(t))
	sink.Draw(testFrame(t))

	if sink.Err() != nil {
		t.Fatal(sink.Err())
	}
	if n := strings.Count(sb.String(), "<svg"); n != 2 {
		t.Errorf("expected 2 documents, got %d", n)
	}

	fw := &failWriter{}
	bad := NewSVGSink(fw, scene.Viewport{Width: 10, Height: 10})
	bad.Draw(testFrame(t))
	bad.Draw(testFrame(t))
	if bad.Err() == nil || fw.calls != 1 {
		t.Errorf("expected one failed write, err=%v calls=%d", bad.Err(), fw.calls)
	}
}
