package metrics

import (
	"math"

	"github.com/san-kum/mechlab/internal/gravity"
	"gonum.org/v1/gonum/spatial/r2"
)

// Metric observes a gravity session after each step.
type Metric interface {
	Name() string
	Observe(s *gravity.System)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported for every orbit run.
func Defaults(g float64) []Metric {
	return []Metric{
		NewEnergyDrift(g),
		NewMomentumDrift(),
		NewAngularMomentumDrift(),
	}
}

// EnergyDrift tracks the largest relative change in total energy since the
// first observation.
type EnergyDrift struct {
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g float64) *EnergyDrift {
	return &EnergyDrift{g: g}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s *gravity.System) {
	energy := s.Energy(e.g)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 && !math.IsInf(energy, 0) {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the largest change in center-of-mass velocity, in m/s.
type MomentumDrift struct {
	initial  r2.Vec
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "com_velocity_drift" }

func (m *MomentumDrift) Observe(s *gravity.System) {
	v := s.CenterOfMassVelocity()
	if m.samples == 0 {
		m.initial = v
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, r2.Norm(r2.Sub(v, m.initial)))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = r2.Vec{}
	m.maxDrift = 0
	m.samples = 0
}

// AngularMomentumDrift is relative, like EnergyDrift.
type AngularMomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(s *gravity.System) {
	l := s.AngularMomentum()
	if a.samples == 0 {
		a.initial = l
	}
	a.samples++
	if a.initial != 0 {
		a.maxDrift = math.Max(a.maxDrift, math.Abs(l-a.initial)/math.Abs(a.initial))
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
