package ad

import (
	"errors"
	"fmt"
)

// Failure taxonomy for Taylor arithmetic.
var (
	// ErrUndefinedArithmetic indicates a coefficient recurrence hit a
	// point where the operation is undefined (division by a series
	// with zero constant term, log of a non-positive value, ...).
	ErrUndefinedArithmetic = errors.New("ad: undefined arithmetic")

	// ErrOrderMismatch indicates two AD numbers of different
	// truncation orders were combined.
	ErrOrderMismatch = errors.New("ad: order mismatch")
)

// Error carries the failing operation alongside the sentinel. Operator
// methods panic with *Error so a single evaluation fails fast; the
// package entry points (Derivative, Jacobian, Eval) recover it into an
// ordinary error return.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Op)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(sentinel error, format string, args ...interface{}) {
	panic(&Error{Op: fmt.Sprintf(format, args...), Err: sentinel})
}

// catch converts a panicking *Error into an error return. Any other
// panic value is re-raised.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*err = e
		return
	}
	panic(r)
}
