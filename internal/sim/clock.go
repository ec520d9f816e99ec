package sim

import "time"

// Clock measures wall-clock time between ticks and clamps each interval to
// MaxDt so a stalled frame cannot blow up the integration step.
type Clock struct {
	MaxDt float64
	now   func() time.Time
	last  time.Time
}

func NewClock(maxDt float64) *Clock {
	return NewClockWith(maxDt, time.Now)
}

// NewClockWith uses now as the time source.
func NewClockWith(maxDt float64, now func() time.Time) *Clock {
	return &Clock{MaxDt: maxDt, now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous tick, clamped to
// [0, MaxDt]. A non-positive MaxDt disables the upper clamp.
func (c *Clock) Tick() float64 {
	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		dt = 0
	}
	if c.MaxDt > 0 && dt > c.MaxDt {
		dt = c.MaxDt
	}
	return dt
}

// Reset restarts the measurement from the current time.
func (c *Clock) Reset() {
	c.last = c.now()
}
