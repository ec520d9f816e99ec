package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
)

// Simulator owns the body roster and runs the per-tick passes in order:
// gravity, trail capture, integration, collisions. It is not safe for
// concurrent use.
type Simulator struct {
	world      *dynamo.World
	initial    *dynamo.World
	integrator integrators.Integrator
	params     Params
	clock      *Clock
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
	t          float64
	ticks      int
}

func New(w *dynamo.World, integrator integrators.Integrator, params Params) *Simulator {
	if integrator == nil {
		integrator = integrators.NewSemiImplicitEuler()
	}
	return &Simulator{
		world:      w,
		initial:    w.Clone(),
		integrator: integrator,
		params:     params,
		clock:      NewClock(params.MaxDt),
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// AddMetric attaches m. Metrics that implement dynamo.Seeder take their
// baseline from the current state.
func (s *Simulator) AddMetric(m dynamo.Metric) {
	s.metrics = append(s.metrics, m)
	s.seed(m)
}

func (s *Simulator) seed(m dynamo.Metric) {
	if sd, ok := m.(dynamo.Seeder); ok {
		sd.Seed(s.world, s.t)
	}
}

// SetClock replaces the wall clock used by Advance.
func (s *Simulator) SetClock(c *Clock) { s.clock = c }

func (s *Simulator) World() *dynamo.World { return s.world }
func (s *Simulator) Params() Params       { return s.params }
func (s *Simulator) Time() float64        { return s.t }
func (s *Simulator) Ticks() int           { return s.ticks }

// Step runs one tick with the given dt and returns the contacts resolved in it.
func (s *Simulator) Step(dt float64) []dynamo.Contact {
	w := s.world

	physics.ApplyGravity(w, s.params.G, s.params.Softening, dt)

	for i := range w.Bodies {
		b := &w.Bodies[i]
		b.Trail.Push(b.Pos)
	}
	s.integrator.Step(w, dt)

	contacts := physics.ResolveCollisions(w)

	s.t += dt
	s.ticks++

	for _, m := range s.metrics {
		m.Observe(w, contacts, s.t)
	}
	for _, o := range s.observers {
		o.OnStep(w, contacts, s.t)
	}
	return contacts
}

// Advance runs one tick using the clamped wall-clock interval.
func (s *Simulator) Advance() []dynamo.Contact {
	return s.Step(s.clock.Tick())
}

// Frame advances one tick and hands the result to sink.
func (s *Simulator) Frame(sink scene.Sink) []dynamo.Contact {
	contacts := s.Advance()
	sink.Draw(scene.Build(s.world))
	return contacts
}

// Reset restores the initial roster with empty trails.
func (s *Simulator) Reset() {
	s.world.Bodies = s.initial.Clone().Bodies
	for i := range s.world.Bodies {
		s.world.Bodies[i].Trail.Reset()
	}
	s.t = 0
	s.ticks = 0
	s.clock.Reset()
	for _, m := range s.metrics {
		m.Reset()
		s.seed(m)
	}
}

// Run performs a headless fixed-dt run from the current state.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	every := cfg.SampleEvery
	if every < 1 {
		every = 1
	}

	steps := cfg.Steps()
	hint := min(steps/every+1, sampleHint)
	result := &Result{
		Times:   make([]float64, 0, hint),
		States:  make([][]dynamo.BodyState, 0, hint),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
		s.seed(m)
	}

	result.Times = append(result.Times, s.t)
	result.States = append(result.States, s.world.Snapshot())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		contacts := s.Step(cfg.Dt)
		result.Contacts += len(contacts)
		result.StepsTaken++

		if cfg.ValidateState && !s.world.IsFinite() {
			return result, fmt.Errorf("%w at t=%.4f", dynamo.ErrInvalidState, s.t)
		}

		if (i+1)%every == 0 {
			result.Times = append(result.Times, s.t)
			result.States = append(result.States, s.world.Snapshot())
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
