package fem

import (
	"errors"
	"fmt"
)

var (
	// ErrNoElements indicates an empty element chain.
	ErrNoElements = errors.New("fem: no elements")

	// ErrInvalidElement indicates a non-positive length or modulus, or a
	// non-finite value.
	ErrInvalidElement = errors.New("fem: invalid element")

	// ErrSingular indicates the reduced stiffness matrix cannot be solved,
	// typically because an element has zero stiffness.
	ErrSingular = errors.New("fem: singular stiffness matrix")
)

// ElementError names the element that failed validation.
type ElementError struct {
	Index   int
	Wrapped error
	Reason  string
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v: %s", e.Index+1, e.Wrapped, e.Reason)
}

func (e *ElementError) Unwrap() error {
	return e.Wrapped
}
