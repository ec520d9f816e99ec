package dynamo

import (
	"errors"
	"testing"
)

func TestNewTrail_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		if _, err := NewTrail(c); !errors.Is(err, ErrInvalidTrail) {
			t.Errorf("capacity %d: expected ErrInvalidTrail, got %v", c, err)
		}
	}
}

func TestTrail_PushBelowCapacity(t *testing.T) {
	tr, _ := NewTrail(4)
	tr.Push(Vec2{1, 0})
	tr.Push(Vec2{2, 0})

	if tr.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", tr.Len())
	}
	pts := tr.Points()
	if pts[0].X != 1 || pts[1].X != 2 {
		t.Errorf("unexpected order: %v", pts)
	}
}

func TestTrail_EvictsOldest(t *testing.T) {
	const capacity = 100
	const ticks = 250

	tr, _ := NewTrail(capacity)
	for tick := 1; tick <= ticks; tick++ {
		tr.Push(Vec2{X: float64(tick)})
	}

	if tr.Len() != capacity {
		t.Fatalf("expected %d points, got %d", capacity, tr.Len())
	}

	oldest := tr.At(0).X
	if want := float64(ticks - capacity + 1); oldest != want {
		t.Errorf("oldest point from tick %v, want %v", oldest, want)
	}
	if newest := tr.At(capacity - 1).X; newest != ticks {
		t.Errorf("newest point from tick %v, want %d", newest, ticks)
	}

	pts := tr.Points()
	for i := 1; i < len(pts); i++ {
		if pts[i].X != pts[i-1].X+1 {
			t.Fatalf("points out of order at %d: %v then %v", i, pts[i-1], pts[i])
		}
	}
}

func TestTrail_CapacityOne(t *testing.T) {
	tr, _ := NewTrail(1)
	tr.Push(Vec2{1, 1})
	tr.Push(Vec2{2, 2})

	if tr.Len() != 1 || tr.At(0) != (Vec2{2, 2}) {
		t.Errorf("expected only the newest point, got %v", tr.Points())
	}
}

func TestTrail_ResetAndClone(t *testing.T) {
	tr, _ := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(Vec2{X: float64(i)})
	}

	c := tr.Clone()
	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("expected empty trail after reset, got %d", tr.Len())
	}
	if c.Len() != 3 || c.At(0).X != 2 {
		t.Errorf("clone did not keep contents: %v", c.Points())
	}

	tr.Push(Vec2{X: 9})
	if c.At(2).X != 4 {
		t.Error("clone shares storage with original")
	}
}
