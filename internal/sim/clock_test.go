package sim

import (
	"math"
	"testing"
	"time"
)

func TestClock_Tick(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWith(0.05, ft.Now)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"no time", 0, 0},
		{"one frame", 16 * time.Millisecond, 0.016},
		{"at limit", 50 * time.Millisecond, 0.05},
		{"stall", 3 * time.Second, 0.05},
		{"backwards", -time.Second, 0},
	}

	for _, tt := range tests {
		ft.advance(tt.elapsed)
		if got := c.Tick(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Tick() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClock_Unclamped(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWith(0, ft.Now)
	ft.advance(2 * time.Second)
	if got := c.Tick(); got != 2 {
		t.Errorf("Tick() = %v, want 2", got)
	}
}

func TestClock_Reset(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWith(10, ft.Now)
	ft.advance(time.Second)
	c.Reset()
	ft.advance(100 * time.Millisecond)
	if got := c.Tick(); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Tick() after reset = %v, want 0.1", got)
	}
}
