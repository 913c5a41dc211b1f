// Package newton solves F(x) = 0 by damping-free Newton iteration,
// with exact Jacobians from the ad package and linear solves through
// gonum. The same stopping contract backs the scalar root-finding
// strategies in this package and every implicit ODE step.
package newton

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/num"
)

// Func is a residual, written generically so the solver can evaluate
// it over plain scalars while the AD engine differentiates the same
// code.
type Func func(x num.Vector) num.Vector

// JacobianFunc supplies the Jacobian of the residual at a plain point.
type JacobianFunc func(x []float64) (*mat.Dense, error)

// Options is the shared stopping contract: converged when the residual
// norm drops below Tol, failed after MaxIter iterations.
type Options struct {
	Tol     float64
	MaxIter int
}

func DefaultOptions() Options {
	return Options{Tol: 1e-10, MaxIter: 50}
}

// Stats reports how a solve went.
type Stats struct {
	Iterations int
	Residual   float64
}

// Solve runs Newton iteration from x0. When jac is nil the Jacobian is
// obtained from the AD engine by differentiating F itself. There is no
// damping and no retry: a singular linear solve or an exhausted
// iteration budget surfaces as a *SolveError.
func Solve(F Func, jac JacobianFunc, x0 []float64, opt Options) ([]float64, Stats, error) {
	if jac == nil {
		jac = func(x []float64) (*mat.Dense, error) {
			return ad.Jacobian(func(v num.Vector) num.Vector { return F(v) }, x)
		}
	}

	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)

	res, err := ad.Eval(func(v num.Vector) num.Vector { return F(v) }, x)
	if err != nil {
		return nil, Stats{}, &SolveError{Last: x, Err: err}
	}
	rnorm := norm(res)

	var st Stats
	for st.Iterations = 0; st.Iterations < opt.MaxIter; st.Iterations++ {
		st.Residual = rnorm
		if rnorm < opt.Tol {
			return x, st, nil
		}

		j, err := jac(x)
		if err != nil {
			return nil, st, &SolveError{Iterations: st.Iterations, Residual: rnorm, Last: x, Err: err}
		}

		// Solve J * delta = -F(x).
		b := mat.NewVecDense(n, nil)
		for i, r := range res {
			b.SetVec(i, -r)
		}
		var lu mat.LU
		lu.Factorize(j)
		delta := mat.NewVecDense(n, nil)
		if err := lu.SolveVecTo(delta, false, b); err != nil {
			return nil, st, &SolveError{Iterations: st.Iterations, Residual: rnorm, Last: x, Err: ErrSingularJacobian}
		}

		for i := range x {
			x[i] += delta.AtVec(i)
		}

		res, err = ad.Eval(func(v num.Vector) num.Vector { return F(v) }, x)
		if err != nil {
			return nil, st, &SolveError{Iterations: st.Iterations, Residual: rnorm, Last: x, Err: err}
		}
		rnorm = norm(res)
	}

	st.Residual = rnorm
	if rnorm < opt.Tol {
		return x, st, nil
	}
	return nil, st, &SolveError{Iterations: st.Iterations, Residual: rnorm, Last: x, Err: ErrNonConvergence}
}

func norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return mat.Norm(mat.NewVecDense(len(v), append([]float64(nil), v...)), 2)
}
