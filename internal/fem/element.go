package fem

import (
	"fmt"
	"math"
)

// Element is one axial spring. Area in m², Modulus in Pa, Length in m and
// Force in N applied at the element's far node.
type Element struct {
	Area    float64 `json:"area" yaml:"area"`
	Modulus float64 `json:"modulus" yaml:"modulus"`
	Length  float64 `json:"length" yaml:"length"`
	Force   float64 `json:"force" yaml:"force"`
}

// Stiffness returns k = A·E/L.
func (e Element) Stiffness() float64 {
	return e.Area * e.Modulus / e.Length
}

func (e Element) Validate() error {
	for _, v := range []float64{e.Area, e.Modulus, e.Length, e.Force} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidElement)
		}
	}
	if e.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidElement, e.Length)
	}
	if e.Modulus <= 0 {
		return fmt.Errorf("%w: modulus must be positive, got %g", ErrInvalidElement, e.Modulus)
	}
	return nil
}

func validate(elements []Element) error {
	if len(elements) == 0 {
		return ErrNoElements
	}
	for i, e := range elements {
		if err := e.Validate(); err != nil {
			return &ElementError{Index: i, Wrapped: ErrInvalidElement, Reason: err.Error()}
		}
	}
	return nil
}
