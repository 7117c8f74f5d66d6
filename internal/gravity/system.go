package gravity

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// System is one simulation session. Bodies and Tracers are mutated in
// place by Step; callers may read them between steps.
type System struct {
	Bodies  []Body
	Tracers []Body
	Steps   int
	Time    float64
}

// NewSystem validates and copies the given bodies. Tracer masses are
// forced to zero. Unnamed bodies get positional names.
func NewSystem(bodies, tracers []Body) (*System, error) {
	s := &System{}
	if err := s.Reset(bodies, tracers); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the session's bodies and clears the step counter.
// On error the session is unchanged.
func (s *System) Reset(bodies, tracers []Body) error {
	bs := make([]Body, len(bodies))
	for i, b := range bodies {
		if b.Name == "" {
			b.Name = fmt.Sprintf("body %d", i+1)
		}
		if err := b.validate(); err != nil {
			return err
		}
		bs[i] = b
	}

	ts := make([]Body, len(tracers))
	for i, t := range tracers {
		if t.Name == "" {
			t.Name = fmt.Sprintf("satellite %d", i+1)
		}
		t.Mass = 0
		if err := t.validate(); err != nil {
			return err
		}
		ts[i] = t
	}

	s.Bodies, s.Tracers = bs, ts
	s.Steps, s.Time = 0, 0
	return nil
}

// Step advances every body by one forward-Euler step of p.Dt seconds.
//
// Massive velocities are updated from pre-step positions, then tracer
// velocities from the updated massive set, then all positions. If any
// pair coincides or the result is not finite the system is left untouched.
func (s *System) Step(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	bodies := make([]Body, len(s.Bodies))
	copy(bodies, s.Bodies)
	tracers := make([]Body, len(s.Tracers))
	copy(tracers, s.Tracers)

	for i := range bodies {
		a, j, err := acceleration(s.Bodies[i].Pos, i, s.Bodies, p.G)
		if err != nil {
			return s.stepError(bodies[i].Name, s.Bodies[j].Name, err)
		}
		bodies[i].Vel = r2.Add(bodies[i].Vel, r2.Scale(p.Dt, a))
	}

	for i := range tracers {
		a, j, err := acceleration(tracers[i].Pos, -1, bodies, p.G)
		if err != nil {
			return s.stepError(tracers[i].Name, bodies[j].Name, err)
		}
		tracers[i].Vel = r2.Add(tracers[i].Vel, r2.Scale(p.Dt, a))
	}

	for _, set := range [][]Body{bodies, tracers} {
		for i := range set {
			set[i].Pos = r2.Add(set[i].Pos, r2.Scale(p.Dt, set[i].Vel))
			if !finite(set[i]) {
				return s.stepError(set[i].Name, "", ErrUnstable)
			}
		}
	}

	s.Bodies, s.Tracers = bodies, tracers
	s.Steps++
	s.Time += p.Dt
	return nil
}

// acceleration sums G·m/r² toward every source except index self. On a
// zero separation it returns the index of the coincident source.
func acceleration(pos r2.Vec, self int, sources []Body, g float64) (r2.Vec, int, error) {
	var a r2.Vec
	for j, src := range sources {
		if j == self {
			continue
		}
		d := r2.Sub(src.Pos, pos)
		r := r2.Norm(d)
		if r == 0 {
			return r2.Vec{}, j, ErrCoincident
		}
		a = r2.Add(a, r2.Scale(g*src.Mass/(r*r*r), d))
	}
	return a, -1, nil
}

func (s *System) stepError(body, other string, err error) error {
	return &StepError{Step: s.Steps + 1, Body: body, Other: other, Wrapped: err}
}

func finite(b Body) bool {
	for _, v := range []float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Run calls Step frames times, handing control to observe after each
// step. It returns early with nil when observe returns false, or with
// ctx.Err() when ctx is done.
func (s *System) Run(ctx context.Context, p Params, frames int, observe func(*System) bool) error {
	if frames < 0 {
		return fmt.Errorf("%w: frames=%d", ErrInvalidParams, frames)
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.Step(p); err != nil {
			return err
		}
		if observe != nil && !observe(s) {
			return nil
		}
	}
	return nil
}

// Clone returns an independent copy of the session.
func (s *System) Clone() *System {
	c := &System{
		Bodies:  make([]Body, len(s.Bodies)),
		Tracers: make([]Body, len(s.Tracers)),
		Steps:   s.Steps,
		Time:    s.Time,
	}
	copy(c.Bodies, s.Bodies)
	copy(c.Tracers, s.Tracers)
	return c
}

// All returns massive bodies followed by tracers.
func (s *System) All() []Body {
	all := make([]Body, 0, len(s.Bodies)+len(s.Tracers))
	all = append(all, s.Bodies...)
	return append(all, s.Tracers...)
}

// Snapshot flattens the session as [x, y, vx, vy] per body in All order.
func (s *System) Snapshot() []float64 {
	all := s.All()
	state := make([]float64, 0, len(all)*4)
	for _, b := range all {
		state = append(state, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	return state
}

// Names returns body names in All order.
func (s *System) Names() []string {
	all := s.All()
	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name
	}
	return names
}
