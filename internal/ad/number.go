// Package ad implements forward (Taylor) mode automatic
// differentiation. A [Number] holds the truncated Taylor coefficients
// of a function at a point; arithmetic propagates them through the
// usual power-series recurrences, so derivatives up to the configured
// order come out exact to floating-point precision.
package ad

import (
	"fmt"
	"strings"

	"github.com/san-kum/odelab/internal/num"
)

// Number is a truncated Taylor series. coef[k] holds the k-th
// derivative scaled by 1/k!, so coef[0] is the function value. The
// order is fixed at construction; all Numbers combined in one
// computation must share it.
type Number struct {
	coef []float64
}

// Constant builds a Number with value v and all derivative
// coefficients zero.
func Constant(v float64, order int) *Number {
	if order < 0 {
		panic(fmt.Sprintf("ad: negative order %d", order))
	}
	c := make([]float64, order+1)
	c[0] = v
	return &Number{coef: c}
}

// Variable builds the seed for differentiation: value v, first
// derivative 1, higher coefficients zero.
func Variable(v float64, order int) *Number {
	n := Constant(v, order)
	if order >= 1 {
		n.coef[1] = 1
	}
	return n
}

// fromCoeffs wraps a coefficient slice without copying.
func fromCoeffs(coef []float64) *Number { return &Number{coef: coef} }

// Order is the truncation order (highest derivative carried).
func (a *Number) Order() int { return len(a.coef) - 1 }

// Value is the zeroth Taylor coefficient.
func (a *Number) Value() float64 { return a.coef[0] }

// Coeff returns the k-th Taylor coefficient, f^(k)(x)/k!.
func (a *Number) Coeff(k int) float64 {
	if k < 0 || k >= len(a.coef) {
		return 0
	}
	return a.coef[k]
}

// Deriv returns the k-th derivative, k! * Coeff(k).
func (a *Number) Deriv(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f * a.Coeff(k)
}

// Coeffs returns a copy of the full coefficient vector.
func (a *Number) Coeffs() []float64 {
	c := make([]float64, len(a.coef))
	copy(c, a.coef)
	return c
}

func (a *Number) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range a.coef {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", c)
	}
	b.WriteString("]")
	return b.String()
}

// operand coerces the other side of a binary operation. A plain Scalar
// is lifted to a constant of the receiver's order; a Number of a
// different order fails fast.
func (a *Number) operand(o num.Real, op string) *Number {
	switch b := o.(type) {
	case *Number:
		if len(b.coef) != len(a.coef) {
			fail(ErrOrderMismatch, "%s of orders %d and %d", op, a.Order(), b.Order())
		}
		return b
	case num.Scalar:
		return Constant(float64(b), a.Order())
	default:
		fail(ErrUndefinedArithmetic, "%s with foreign type %T", op, o)
		return nil
	}
}

func (a *Number) Add(o num.Real) num.Real {
	b := a.operand(o, "add")
	c := make([]float64, len(a.coef))
	for i := range c {
		c[i] = a.coef[i] + b.coef[i]
	}
	return fromCoeffs(c)
}

func (a *Number) Sub(o num.Real) num.Real {
	b := a.operand(o, "sub")
	c := make([]float64, len(a.coef))
	for i := range c {
		c[i] = a.coef[i] - b.coef[i]
	}
	return fromCoeffs(c)
}

// Mul is the truncated Cauchy product.
func (a *Number) Mul(o num.Real) num.Real {
	b := a.operand(o, "mul")
	c := make([]float64, len(a.coef))
	for k := range c {
		s := 0.0
		for j := 0; j <= k; j++ {
			s += a.coef[j] * b.coef[k-j]
		}
		c[k] = s
	}
	return fromCoeffs(c)
}

// Div solves q*b = a coefficient by coefficient. The divisor must have
// a nonzero constant term.
func (a *Number) Div(o num.Real) num.Real {
	b := a.operand(o, "div")
	if b.coef[0] == 0 {
		fail(ErrUndefinedArithmetic, "division by series with zero constant term")
	}
	q := make([]float64, len(a.coef))
	for k := range q {
		s := a.coef[k]
		for j := 1; j <= k; j++ {
			s -= b.coef[j] * q[k-j]
		}
		q[k] = s / b.coef[0]
	}
	return fromCoeffs(q)
}

func (a *Number) Neg() num.Real {
	c := make([]float64, len(a.coef))
	for i := range c {
		c[i] = -a.coef[i]
	}
	return fromCoeffs(c)
}

// Lift builds a constant of the receiver's order, so generic code can
// introduce literals without knowing the representation.
func (a *Number) Lift(v float64) num.Real { return Constant(v, a.Order()) }
