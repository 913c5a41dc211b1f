package newton

import (
	"math"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/num"
)

// Scalar root finding. All three strategies share the Options stopping
// contract: success when |f(x)| < Tol, ErrNonConvergence when MaxIter
// runs out. Only the Newton strategy needs a derivative, and it gets
// an exact one from the AD engine.

// FindRoot runs scalar Newton iteration from x0.
func FindRoot(f func(num.Real) num.Real, x0 float64, opt Options) (float64, Stats, error) {
	x := x0
	var st Stats
	for st.Iterations = 0; st.Iterations < opt.MaxIter; st.Iterations++ {
		n, err := ad.Derivative(f, x, 1)
		if err != nil {
			return 0, st, &SolveError{Iterations: st.Iterations, Last: []float64{x}, Err: err}
		}
		fx, dfx := n.Value(), n.Deriv(1)
		st.Residual = math.Abs(fx)
		if st.Residual < opt.Tol {
			return x, st, nil
		}
		if dfx == 0 {
			return 0, st, &SolveError{Iterations: st.Iterations, Residual: st.Residual, Last: []float64{x}, Err: ErrSingularJacobian}
		}
		x -= fx / dfx
	}
	return 0, st, &SolveError{Iterations: st.Iterations, Residual: st.Residual, Last: []float64{x}, Err: ErrNonConvergence}
}

// FindRootSecant approximates the derivative from the two most recent
// iterates, starting from x0 and x1.
func FindRootSecant(f func(float64) float64, x0, x1 float64, opt Options) (float64, Stats, error) {
	f0, f1 := f(x0), f(x1)
	var st Stats
	for st.Iterations = 0; st.Iterations < opt.MaxIter; st.Iterations++ {
		st.Residual = math.Abs(f1)
		if st.Residual < opt.Tol {
			return x1, st, nil
		}
		if f1 == f0 {
			return 0, st, &SolveError{Iterations: st.Iterations, Residual: st.Residual, Last: []float64{x1}, Err: ErrSingularJacobian}
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}
	st.Residual = math.Abs(f1)
	if st.Residual < opt.Tol {
		return x1, st, nil
	}
	return 0, st, &SolveError{Iterations: st.Iterations, Residual: st.Residual, Last: []float64{x1}, Err: ErrNonConvergence}
}

// FindRootBisect halves a bracketing interval [a, b]. The endpoints
// must straddle a sign change.
func FindRootBisect(f func(float64) float64, a, b float64, opt Options) (float64, Stats, error) {
	fa, fb := f(a), f(b)
	var st Stats
	if math.Abs(fa) < opt.Tol {
		st.Residual = math.Abs(fa)
		return a, st, nil
	}
	if math.Abs(fb) < opt.Tol {
		st.Residual = math.Abs(fb)
		return b, st, nil
	}
	if fa*fb > 0 {
		return 0, st, &SolveError{Last: []float64{a, b}, Err: ErrNoBracket}
	}
	for st.Iterations = 0; st.Iterations < opt.MaxIter; st.Iterations++ {
		m := a + (b-a)/2
		fm := f(m)
		st.Residual = math.Abs(fm)
		if st.Residual < opt.Tol {
			return m, st, nil
		}
		if fa*fm < 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
	}
	return 0, st, &SolveError{Iterations: st.Iterations, Residual: st.Residual, Last: []float64{a, b}, Err: ErrNonConvergence}
}
