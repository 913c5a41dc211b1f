package ad

import (
	"math"

	"github.com/san-kum/odelab/internal/num"
)

// Elementary functions by Taylor coefficient recurrence. Each output
// coefficient is a fixed combination of input coefficients up to that
// order; no truncation error beyond the carried order.

// Exp uses k*e[k] = sum_{j=1..k} j*a[j]*e[k-j].
func (a *Number) Exp() num.Real {
	e := make([]float64, len(a.coef))
	e[0] = math.Exp(a.coef[0])
	for k := 1; k < len(e); k++ {
		s := 0.0
		for j := 1; j <= k; j++ {
			s += float64(j) * a.coef[j] * e[k-j]
		}
		e[k] = s / float64(k)
	}
	return fromCoeffs(e)
}

// Log requires a positive constant term.
func (a *Number) Log() num.Real {
	if a.coef[0] <= 0 {
		fail(ErrUndefinedArithmetic, "log of non-positive value %g", a.coef[0])
	}
	l := make([]float64, len(a.coef))
	l[0] = math.Log(a.coef[0])
	for k := 1; k < len(l); k++ {
		s := float64(k) * a.coef[k]
		for j := 1; j < k; j++ {
			s -= float64(j) * l[j] * a.coef[k-j]
		}
		l[k] = s / (float64(k) * a.coef[0])
	}
	return fromCoeffs(l)
}

// Sqrt requires a positive constant term (the derivative is singular
// at zero).
func (a *Number) Sqrt() num.Real {
	if a.coef[0] <= 0 {
		fail(ErrUndefinedArithmetic, "sqrt of non-positive value %g", a.coef[0])
	}
	b := make([]float64, len(a.coef))
	b[0] = math.Sqrt(a.coef[0])
	for k := 1; k < len(b); k++ {
		s := a.coef[k]
		for j := 1; j < k; j++ {
			s -= b[j] * b[k-j]
		}
		b[k] = s / (2 * b[0])
	}
	return fromCoeffs(b)
}

// sinCos propagates the coupled pair
//
//	k*s[k] =  sum j*a[j]*c[k-j]
//	k*c[k] = -sum j*a[j]*s[k-j]
func (a *Number) sinCos() (*Number, *Number) {
	n := len(a.coef)
	s := make([]float64, n)
	c := make([]float64, n)
	s[0] = math.Sin(a.coef[0])
	c[0] = math.Cos(a.coef[0])
	for k := 1; k < n; k++ {
		ss, cc := 0.0, 0.0
		for j := 1; j <= k; j++ {
			ss += float64(j) * a.coef[j] * c[k-j]
			cc -= float64(j) * a.coef[j] * s[k-j]
		}
		s[k] = ss / float64(k)
		c[k] = cc / float64(k)
	}
	return fromCoeffs(s), fromCoeffs(c)
}

func (a *Number) Sin() num.Real {
	s, _ := a.sinCos()
	return s
}

func (a *Number) Cos() num.Real {
	_, c := a.sinCos()
	return c
}

func (a *Number) Tan() num.Real {
	s, c := a.sinCos()
	return s.Div(c)
}

func (a *Number) sinhCosh() (*Number, *Number) {
	n := len(a.coef)
	s := make([]float64, n)
	c := make([]float64, n)
	s[0] = math.Sinh(a.coef[0])
	c[0] = math.Cosh(a.coef[0])
	for k := 1; k < n; k++ {
		ss, cc := 0.0, 0.0
		for j := 1; j <= k; j++ {
			ss += float64(j) * a.coef[j] * c[k-j]
			cc += float64(j) * a.coef[j] * s[k-j]
		}
		s[k] = ss / float64(k)
		c[k] = cc / float64(k)
	}
	return fromCoeffs(s), fromCoeffs(c)
}

func (a *Number) Sinh() num.Real {
	s, _ := a.sinhCosh()
	return s
}

func (a *Number) Cosh() num.Real {
	_, c := a.sinhCosh()
	return c
}

// Pow raises to an arbitrary real power via the recurrence
// k*a[0]*b[k] = sum_{j=1..k} ((p+1)j - k) a[j] b[k-j]. Integer
// exponents are routed through PowInt so zero and negative bases keep
// working.
func (a *Number) Pow(p float64) num.Real {
	if p == math.Trunc(p) && math.Abs(p) < 1<<30 {
		return a.PowInt(int(p))
	}
	if a.coef[0] <= 0 {
		fail(ErrUndefinedArithmetic, "pow(%g) of non-positive value %g", p, a.coef[0])
	}
	b := make([]float64, len(a.coef))
	b[0] = math.Pow(a.coef[0], p)
	for k := 1; k < len(b); k++ {
		s := 0.0
		for j := 1; j <= k; j++ {
			s += ((p+1)*float64(j) - float64(k)) * a.coef[j] * b[k-j]
		}
		b[k] = s / (float64(k) * a.coef[0])
	}
	return fromCoeffs(b)
}

// PowInt raises to an integer power by repeated multiplication, which
// stays defined for zero and negative bases.
func (a *Number) PowInt(n int) num.Real {
	if n < 0 {
		return Constant(1, a.Order()).Div(a.PowInt(-n))
	}
	out := num.Real(Constant(1, a.Order()))
	base := num.Real(a)
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return out
}
