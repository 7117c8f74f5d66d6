package gravity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// G is the Newtonian constant of gravitation in m³/(kg·s²).
const G = 6.6743e-11

// Body is a point mass. Mass is in kg, Pos in m and Vel in m/s.
// A zero mass marks a tracer.
type Body struct {
	Name string
	Mass float64
	Pos  r2.Vec
	Vel  r2.Vec
}

func (b Body) IsTracer() bool { return b.Mass == 0 }

func (b Body) validate() error {
	for _, v := range []float64{b.Mass, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has non-finite value", ErrInvalidBody, b.Name)
		}
	}
	if b.Mass < 0 {
		return fmt.Errorf("%w: %s has negative mass %g", ErrInvalidBody, b.Name, b.Mass)
	}
	return nil
}

// Params are the per-step run parameters. Dt may be zero.
type Params struct {
	G  float64
	Dt float64
}

func (p Params) Validate() error {
	if math.IsNaN(p.G) || math.IsInf(p.G, 0) || p.G < 0 {
		return fmt.Errorf("%w: G=%g", ErrInvalidParams, p.G)
	}
	if math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) || p.Dt < 0 {
		return fmt.Errorf("%w: dt=%g", ErrInvalidParams, p.Dt)
	}
	return nil
}
