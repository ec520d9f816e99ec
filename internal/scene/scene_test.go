package scene

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 0, MaxBrightness},
		{0, 1, MaxBrightness},
		{0, 2, MinBrightness},
		{1, 2, MaxBrightness},
		{0, 101, MinBrightness},
		{50, 101, 0.65},
		{100, 101, MaxBrightness},
	}

	for _, tt := range tests {
		got := Brightness(tt.i, tt.n)
		if math.IsNaN(got) || math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Brightness(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	a, _ := dynamo.NewBody(dynamo.Vec2{X: 1, Y: 2}, dynamo.Vec2{}, 10, 3, 5)
	b, _ := dynamo.NewBody(dynamo.Vec2{X: 4, Y: 5}, dynamo.Vec2{}, 10, 7, 5)
	for i := 0; i < 3; i++ {
		a.Trail.Push(dynamo.Vec2{X: float64(i)})
	}
	b.Trail.Push(dynamo.Vec2{X: 9})
	w, _ := dynamo.NewWorld(a, b)

	f := Build(w)

	if len(f.Disks) != 2 || len(f.Trails) != 2 {
		t.Fatalf("expected 2 disks and 2 trails, got %d and %d", len(f.Disks), len(f.Trails))
	}
	if f.Disks[1] != (Disk{Center: dynamo.Vec2{X: 4, Y: 5}, Radius: 7}) {
		t.Errorf("unexpected disk %+v", f.Disks[1])
	}

	tr := f.Trails[0]
	if len(tr) != 3 {
		t.Fatalf("expected 3 trail vertices, got %d", len(tr))
	}
	if tr[0].Point.X != 0 || tr[2].Point.X != 2 {
		t.Errorf("trail not oldest first: %+v", tr)
	}
	if tr[0].Brightness != MinBrightness || tr[2].Brightness != MaxBrightness {
		t.Errorf("unexpected ramp %v .. %v", tr[0].Brightness, tr[2].Brightness)
	}
	if f.Trails[1][0].Brightness != MaxBrightness {
		t.Errorf("single point trail brightness = %v", f.Trails[1][0].Brightness)
	}
}

func TestViewport_Fit(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	tr := vp.Fit(160, 60)
	if math.Abs(tr.Scale-0.1) > 1e-12 {
		t.Errorf("scale = %v, want 0.1", tr.Scale)
	}
	x, y := tr.Apply(dynamo.Vec2{X: 400, Y: 300})
	if math.Abs(x-80) > 1e-9 || math.Abs(y-30) > 1e-9 {
		t.Errorf("centre maps to (%v, %v), want (80, 30)", x, y)
	}

	id := vp.Fit(800, 600)
	x, y = id.Apply(dynamo.Vec2{X: 12, Y: 34})
	if x != 12 || y != 34 {
		t.Errorf("identity fit moved point to (%v, %v)", x, y)
	}

	if (Viewport{}).Fit(10, 10).Scale != 1 {
		t.Error("degenerate viewport should map with unit scale")
	}
}

func TestSinkFunc(t *testing.T) {
	var got Frame
	var s Sink = SinkFunc(func(f Frame) { got = f })
	s.Draw(Frame{Disks: []Disk{{Radius: 1}}})
	if len(got.Disks) != 1 {
		t.Error("SinkFunc did not forward the frame")
	}
}
