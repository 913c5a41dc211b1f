package num

import "math"

// Real is the capability set a number must provide so that integrators,
// residuals and root finders can be written once for both plain and
// AD-valued evaluation.
//
// Lift builds a constant of the same representation (and order) as the
// receiver; generic code uses it wherever a literal appears inside a
// formula.
type Real interface {
	Add(o Real) Real
	Sub(o Real) Real
	Mul(o Real) Real
	Div(o Real) Real
	Neg() Real

	Exp() Real
	Log() Real
	Sqrt() Real
	Sin() Real
	Cos() Real
	Tan() Real
	Sinh() Real
	Cosh() Real
	Pow(p float64) Real
	PowInt(n int) Real

	Value() float64
	Lift(v float64) Real
}

// Scalar is the plain float64 instantiation of Real. Division by zero
// and domain errors follow IEEE 754 semantics (Inf/NaN); the
// integration engine rejects non-finite states after each step.
type Scalar float64

func (s Scalar) Add(o Real) Real { return s + o.(Scalar) }
func (s Scalar) Sub(o Real) Real { return s - o.(Scalar) }
func (s Scalar) Mul(o Real) Real { return s * o.(Scalar) }
func (s Scalar) Div(o Real) Real { return s / o.(Scalar) }
func (s Scalar) Neg() Real       { return -s }

func (s Scalar) Exp() Real  { return Scalar(math.Exp(float64(s))) }
func (s Scalar) Log() Real  { return Scalar(math.Log(float64(s))) }
func (s Scalar) Sqrt() Real { return Scalar(math.Sqrt(float64(s))) }
func (s Scalar) Sin() Real  { return Scalar(math.Sin(float64(s))) }
func (s Scalar) Cos() Real  { return Scalar(math.Cos(float64(s))) }
func (s Scalar) Tan() Real  { return Scalar(math.Tan(float64(s))) }
func (s Scalar) Sinh() Real { return Scalar(math.Sinh(float64(s))) }
func (s Scalar) Cosh() Real { return Scalar(math.Cosh(float64(s))) }

func (s Scalar) Pow(p float64) Real { return Scalar(math.Pow(float64(s), p)) }

func (s Scalar) PowInt(n int) Real {
	return Scalar(math.Pow(float64(s), float64(n)))
}

func (s Scalar) Value() float64      { return float64(s) }
func (s Scalar) Lift(v float64) Real { return Scalar(v) }
