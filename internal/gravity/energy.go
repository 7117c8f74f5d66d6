package gravity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Only massive bodies contribute to the quantities below; tracers carry
// no mass.

func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for _, b := range s.Bodies {
		ke += 0.5 * b.Mass * r2.Norm2(b.Vel)
	}
	return ke
}

// PotentialEnergy returns -Σ G·mi·mj/r over massive pairs. A coincident
// pair yields -Inf.
func (s *System) PotentialEnergy(g float64) float64 {
	pe := 0.0
	for i := range s.Bodies {
		for j := i + 1; j < len(s.Bodies); j++ {
			r := r2.Norm(r2.Sub(s.Bodies[j].Pos, s.Bodies[i].Pos))
			if r == 0 {
				return math.Inf(-1)
			}
			pe -= g * s.Bodies[i].Mass * s.Bodies[j].Mass / r
		}
	}
	return pe
}

func (s *System) Energy(g float64) float64 {
	return s.KineticEnergy() + s.PotentialEnergy(g)
}

func (s *System) Momentum() r2.Vec {
	var p r2.Vec
	for _, b := range s.Bodies {
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	return p
}

func (s *System) TotalMass() float64 {
	m := 0.0
	for _, b := range s.Bodies {
		m += b.Mass
	}
	return m
}

// CenterOfMassVelocity is zero for a massless system.
func (s *System) CenterOfMassVelocity() r2.Vec {
	m := s.TotalMass()
	if m == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/m, s.Momentum())
}

// AngularMomentum returns the z component about the origin.
func (s *System) AngularMomentum() float64 {
	l := 0.0
	for _, b := range s.Bodies {
		l += b.Mass * r2.Cross(b.Pos, b.Vel)
	}
	return l
}
