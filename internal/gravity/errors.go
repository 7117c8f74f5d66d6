package gravity

import (
	"errors"
	"fmt"
)

var (
	// ErrCoincident indicates two interacting bodies share a position.
	ErrCoincident = errors.New("gravity: bodies coincide (zero separation)")

	// ErrInvalidParams indicates a negative or non-finite G or timestep.
	ErrInvalidParams = errors.New("gravity: invalid step parameters")

	// ErrInvalidBody indicates a body with bad mass or non-finite coordinates.
	ErrInvalidBody = errors.New("gravity: invalid body")

	// ErrUnstable indicates a step produced NaN or Inf.
	ErrUnstable = errors.New("gravity: state diverged (NaN or Inf detected)")
)

// StepError carries the step and the offending pair of a failed step.
type StepError struct {
	Step    int
	Body    string
	Other   string
	Wrapped error
}

func (e *StepError) Error() string {
	if e.Other == "" {
		return fmt.Sprintf("step %d: %s: %v", e.Step, e.Body, e.Wrapped)
	}
	return fmt.Sprintf("step %d: %s and %s: %v", e.Step, e.Body, e.Other, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
