package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 2}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
}

func TestNewBody_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mass     float64
		radius   float64
		trailLen int
		want     error
	}{
		{"valid", 1000, 10, 100, nil},
		{"zero mass", 0, 10, 100, ErrInvalidBody},
		{"negative mass", -1, 10, 100, ErrInvalidBody},
		{"NaN mass", math.NaN(), 10, 100, ErrInvalidBody},
		{"zero radius", 1000, 0, 100, ErrInvalidBody},
		{"inf radius", 1000, math.Inf(1), 100, ErrInvalidBody},
		{"zero trail", 1000, 10, 0, ErrInvalidTrail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(Vec2{}, Vec2{}, tt.mass, tt.radius, tt.trailLen)
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewWorld_Empty(t *testing.T) {
	if _, err := NewWorld(); !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestWorld_CloneIsDeep(t *testing.T) {
	b, _ := NewBody(Vec2{1, 2}, Vec2{3, 4}, 5, 1, 10)
	b.Trail.Push(b.Pos)
	w, _ := NewWorld(b)

	c := w.Clone()
	w.Bodies[0].Pos = Vec2{}
	w.Bodies[0].Trail.Push(Vec2{})

	if c.Bodies[0].Pos != (Vec2{1, 2}) {
		t.Errorf("clone position changed: %v", c.Bodies[0].Pos)
	}
	if c.Bodies[0].Trail.Len() != 1 {
		t.Errorf("clone trail changed: %d points", c.Bodies[0].Trail.Len())
	}
	if c.Bodies[0].Mass() != 5 || c.Bodies[0].Radius() != 1 {
		t.Error("clone lost mass or radius")
	}
}

func TestWorld_Snapshot(t *testing.T) {
	b, _ := NewBody(Vec2{1, 2}, Vec2{3, 4}, 5, 1, 10)
	w, _ := NewWorld(b)

	s := w.Snapshot()
	if len(s) != 1 || s[0] != (BodyState{1, 2, 3, 4}) {
		t.Errorf("unexpected snapshot %v", s)
	}
}
