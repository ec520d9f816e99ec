package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/scene"
)

func TestCanvas_Plot(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Plot(0, 0, 0.5)
	c.Plot(3, 3, 0.8)
	c.Plot(-1, 0, 1)
	c.Plot(4, 0, 1)

	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("cell 0 = %U, want %U", c.Grid[0][0], blank|0x1)
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("cell 1 = %U, want %U", c.Grid[0][1], blank|0x80)
	}
	if c.Level(0, 0) != 0.5 || c.Level(1, 0) != 0.8 {
		t.Errorf("levels %v %v", c.Level(0, 0), c.Level(1, 0))
	}

	c.Plot(1, 1, 0.3)
	if c.Level(0, 0) != 0.5 {
		t.Errorf("dimmer plot lowered level to %v", c.Level(0, 0))
	}
}

func TestCanvas_ClearAndResize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillCircle(4, 4, 2)
	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Error("canvas not cleared")
	}

	c.Resize(10, 3)
	if w, h := c.PixelSize(); w != 20 || h != 12 {
		t.Errorf("pixel size %dx%d, want 20x12", w, h)
	}
	if len(c.Grid) != 3 || len(c.Grid[0]) != 10 {
		t.Errorf("grid %dx%d", len(c.Grid[0]), len(c.Grid))
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 0, 19, 0, 0.6)

	for col := 0; col < 10; col++ {
		if c.Grid[0][col] != blank|0x1|0x8 {
			t.Fatalf("col %d = %U, want top row of dots", col, c.Grid[0][col])
		}
		if c.Level(col, 0) != 0.6 {
			t.Fatalf("col %d level %v", col, c.Level(col, 0))
		}
	}
	if c.Grid[1][0] != blank {
		t.Error("second row touched")
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)

	if !c.Solid(5, 2) {
		t.Error("centre cell not solid")
	}
	if c.Solid(0, 0) || c.Solid(9, 4) {
		t.Error("corner cells marked solid")
	}

	c.Clear()
	c.FillCircle(5, 5, 0)
	if !c.Solid(2, 1) {
		t.Error("zero radius should still plot the centre")
	}
}

func TestCanvasSink_Draw(t *testing.T) {
	body, err := dynamo.NewBody(dynamo.Vec2{X: 400, Y: 300}, dynamo.Vec2{}, 1, 30, 10)
	if err != nil {
		t.Fatal(err)
	}
	body.Trail.Push(dynamo.Vec2{X: 100, Y: 100})
	body.Trail.Push(dynamo.Vec2{X: 140, Y: 100})
	w, _ := dynamo.NewWorld(body)

	// 800x600 world onto 80x60 sub-pixels: scale 0.1, no offset.
	c := NewCanvas(40, 15)
	sink := NewCanvasSink(c, scene.Viewport{Width: 800, Height: 600})
	sink.Draw(scene.Build(w))

	if !c.Solid(20, 7) {
		t.Error("body not drawn at viewport centre")
	}
	if c.Level(5, 2) != scene.MaxBrightness {
		t.Errorf("trail cell level %v, want newest brightness", c.Level(5, 2))
	}
	if c.Level(0, 0) != 0 {
		t.Errorf("empty cell level %v", c.Level(0, 0))
	}
}

func TestCanvasSink_SkipsFarAwayBodies(t *testing.T) {
	body, _ := dynamo.NewBody(dynamo.Vec2{X: 1e12, Y: -1e12}, dynamo.Vec2{}, 1, 5, 10)
	body.Trail.Push(dynamo.Vec2{X: 1e12, Y: -1e12})
	body.Trail.Push(dynamo.Vec2{X: 5e4, Y: 5e4})
	w, _ := dynamo.NewWorld(body)

	c := NewCanvas(10, 5)
	NewCanvasSink(c, scene.Viewport{Width: 100, Height: 100}).Draw(scene.Build(w))

	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != blank {
				t.Fatalf("cell (%d,%d) drawn", col, row)
			}
		}
	}
}

func TestShade(t *testing.T) {
	if shade(0) != 0 || shade(1) != greyLevels-1 || shade(2) != greyLevels-1 || shade(-1) != 0 {
		t.Error("shade not clamped to the grey ramp")
	}
	if shade(scene.MinBrightness) >= shade(scene.MaxBrightness) {
		t.Error("older trail points should render darker")
	}
}

func TestRender(t *testing.T) {
	c := NewCanvas(6, 2)
	c.FillCircle(2, 2, 1)
	c.DrawLine(6, 6, 11, 6, 0.3)

	out := c.Render(ThemeOcean)
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.ContainsRune(out, c.Grid[0][1]) {
		t.Error("body glyph missing from render")
	}
}
