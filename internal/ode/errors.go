package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted indicates a step failed and the run stopped before
	// committing it. The trace holds everything up to the last good
	// state.
	ErrAborted = errors.New("ode: integration aborted")

	// ErrUnstable indicates a step produced NaN or Inf components.
	ErrUnstable = errors.New("ode: state diverged (NaN or Inf)")
)

// StepError wraps a step failure with the context needed to resume:
// which step, at what time, under which method, and the last committed
// state.
type StepError struct {
	Step   int
	Time   float64
	Method Method
	Last   []float64
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g, %s): %v", e.Step, e.Time, e.Method, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Is makes every step failure match ErrAborted, while Unwrap exposes
// the underlying cause (non-convergence, singular Jacobian, ...).
func (e *StepError) Is(target error) bool { return target == ErrAborted }
