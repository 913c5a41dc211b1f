package ode

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/odelab/internal/newton"
	"github.com/san-kum/odelab/internal/num"
)

// Implicit transition rules. Each builds a residual for the unknown
// future state (or stage slopes), seeds the Newton solve with a
// forward-Euler predictor, and commits only on convergence.

// stepBackwardEuler solves z - y - h*f(t+h, z) = 0 for z.
func (r *Run) stepBackwardEuler(t float64, y []float64, h float64) ([]float64, error) {
	f0, err := r.deriv(t, y)
	if err != nil {
		return nil, err
	}
	seed := make([]float64, len(y))
	for i := range y {
		seed[i] = y[i] + h*f0[i]
	}

	tn := t + h
	F := func(v num.Vector) num.Vector {
		fv := r.prob.System.Derive(v[0].Lift(tn), v)
		out := make(num.Vector, len(v))
		for i := range v {
			out[i] = v[i].Sub(v[i].Lift(y[i])).Sub(fv[i].Mul(v[i].Lift(h)))
		}
		return out
	}

	// With an analytic system Jacobian the residual Jacobian is
	// I - h*df/dy; otherwise newton differentiates the residual via AD.
	var jac newton.JacobianFunc
	if r.prob.Jacobian != nil {
		jac = func(x []float64) (*mat.Dense, error) {
			jf, err := r.prob.Jacobian(tn, x)
			if err != nil {
				return nil, err
			}
			n := len(x)
			out := mat.NewDense(n, n, nil)
			out.Scale(-h, jf)
			for i := 0; i < n; i++ {
				out.Set(i, i, out.At(i, i)+1)
			}
			return out, nil
		}
	}

	z, _, err := newton.Solve(F, jac, seed, r.opt.Newton)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// 2-stage Gauss-Legendre collocation, order 4.
var (
	glSqrt3 = math.Sqrt(3)
	glA     = [2][2]float64{
		{0.25, 0.25 - glSqrt3/6},
		{0.25 + glSqrt3/6, 0.25},
	}
	glC = [2]float64{0.5 - glSqrt3/6, 0.5 + glSqrt3/6}
	glB = [2]float64{0.5, 0.5}
)

// stepGaussLegendre4 solves the coupled stage equations
//
//	k_s = f(t + c_s*h, y + h*(a_s1*k_1 + a_s2*k_2)),  s = 1,2
//
// as one joint system of doubled dimension, then combines the stage
// slopes with the b weights.
func (r *Run) stepGaussLegendre4(t float64, y []float64, h float64) ([]float64, error) {
	n := len(y)

	f0, err := r.deriv(t, y)
	if err != nil {
		return nil, err
	}
	seed := make([]float64, 2*n)
	copy(seed[:n], f0)
	copy(seed[n:], f0)

	F := func(v num.Vector) num.Vector {
		out := make(num.Vector, 2*n)
		for s := 0; s < 2; s++ {
			ys := make(num.Vector, n)
			for i := 0; i < n; i++ {
				ys[i] = v[0].Lift(y[i]).
					Add(v[i].Mul(v[0].Lift(h * glA[s][0]))).
					Add(v[n+i].Mul(v[0].Lift(h * glA[s][1])))
			}
			fs := r.prob.System.Derive(v[0].Lift(t+glC[s]*h), ys)
			for i := 0; i < n; i++ {
				out[s*n+i] = v[s*n+i].Sub(fs[i])
			}
		}
		return out
	}

	// Analytic route: assemble the 2n x 2n stage Jacobian
	// I - h*(A ⊗ df/dy) block by block.
	var jac newton.JacobianFunc
	if r.prob.Jacobian != nil {
		jac = func(k []float64) (*mat.Dense, error) {
			out := mat.NewDense(2*n, 2*n, nil)
			for s := 0; s < 2; s++ {
				ys := make([]float64, n)
				for i := 0; i < n; i++ {
					ys[i] = y[i] + h*(glA[s][0]*k[i]+glA[s][1]*k[n+i])
				}
				jf, err := r.prob.Jacobian(t+glC[s]*h, ys)
				if err != nil {
					return nil, err
				}
				for q := 0; q < 2; q++ {
					factor := -h * glA[s][q]
					for i := 0; i < n; i++ {
						for j := 0; j < n; j++ {
							out.Set(s*n+i, q*n+j, factor*jf.At(i, j))
						}
					}
				}
			}
			for i := 0; i < 2*n; i++ {
				out.Set(i, i, out.At(i, i)+1)
			}
			return out, nil
		}
	}

	k, _, err := newton.Solve(F, jac, seed, r.opt.Newton)
	if err != nil {
		return nil, err
	}

	next := make([]float64, n)
	for i := 0; i < n; i++ {
		next[i] = y[i] + h*(glB[0]*k[i]+glB[1]*k[n+i])
	}
	return next, nil
}
