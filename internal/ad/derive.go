package ad

import "github.com/san-kum/odelab/internal/num"

// Derivative evaluates f at x with the input seeded as the AD
// variable, returning the full Taylor expansion up to the requested
// order. Coefficient k of the result is f^(k)(x)/k!.
func Derivative(f func(num.Real) num.Real, x float64, order int) (n *Number, err error) {
	defer catch(&err)
	return asNumber(f(Variable(x, order)), order), nil
}

// Eval evaluates f at a plain point, recovering arithmetic failures
// into an error. Useful when f is generic and may be instantiated over
// either representation.
func Eval(f func(num.Vector) num.Vector, x []float64) (out []float64, err error) {
	defer catch(&err)
	return f(num.NewVector(x)).Values(), nil
}

// asNumber normalizes a generic result: a function that collapses to a
// constant may legitimately hand back a Scalar.
func asNumber(r num.Real, order int) *Number {
	switch v := r.(type) {
	case *Number:
		return v
	case num.Scalar:
		return Constant(float64(v), order)
	default:
		fail(ErrUndefinedArithmetic, "result of foreign type %T", r)
		return nil
	}
}
