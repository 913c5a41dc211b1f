package newton

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularJacobian indicates the linear solve inside a Newton
	// iteration failed; the caller decides whether to retry from a
	// different starting point.
	ErrSingularJacobian = errors.New("newton: singular jacobian")

	// ErrNonConvergence indicates the iteration budget ran out before
	// the residual met the tolerance.
	ErrNonConvergence = errors.New("newton: no convergence")

	// ErrNoBracket indicates a bisection interval whose endpoints do
	// not straddle a root.
	ErrNoBracket = errors.New("newton: interval does not bracket a root")
)

// SolveError carries enough context to resume or retry: the iteration
// count reached, the residual at the last iterate, and the iterate
// itself.
type SolveError struct {
	Iterations int
	Residual   float64
	Last       []float64
	Err        error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v after %d iterations (residual %.3e)", e.Err, e.Iterations, e.Residual)
}

func (e *SolveError) Unwrap() error { return e.Err }
