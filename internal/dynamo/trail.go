package dynamo

import "fmt"

const DefaultTrailLength = 100

// Trail is a fixed-capacity FIFO of past positions backed by a ring buffer.
// Pushing onto a full trail overwrites the oldest point.
type Trail struct {
	buf  []Vec2
	head int // index of the oldest point
	n    int
}

func NewTrail(capacity int) (*Trail, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidTrail, capacity)
	}
	return &Trail{buf: make([]Vec2, capacity)}, nil
}

func (t *Trail) Push(p Vec2) {
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th retained point, 0 being the oldest.
func (t *Trail) At(i int) Vec2 {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Points copies the retained points in order, oldest first.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}

func (t *Trail) Clone() *Trail {
	c := &Trail{buf: make([]Vec2, len(t.buf)), head: t.head, n: t.n}
	copy(c.buf, t.buf)
	return c
}
