// Package optim tunes problem parameters: an exhaustive grid search
// over named parameter ranges, and a scalar minimizer that runs Newton
// on the exact first derivative.
package optim

import (
	"errors"
	"math"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/newton"
	"github.com/san-kum/odelab/internal/num"
	"github.com/san-kum/odelab/internal/ode"
)

// Objective scores a completed trace. Lower is better.
type Objective func(tr *ode.Trace) float64

// Builder materializes a runnable problem for one parameter
// assignment.
type Builder func(params map[string]float64) (ode.Problem, ode.Method, ode.Options, error)

type GridSearch struct {
	names  []string
	ranges [][]float64
}

func NewGridSearch(names []string, ranges [][]float64) *GridSearch {
	return &GridSearch{names: names, ranges: ranges}
}

var ErrNoCandidate = errors.New("optim: no parameter assignment produced a finite score")

// Search evaluates the objective at every grid point and returns the
// best assignment. Assignments whose run fails to build or aborts are
// skipped rather than failing the search.
func (g *GridSearch) Search(build Builder, objective Objective) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.walk(0, map[string]float64{}, func(current map[string]float64) {
		p, m, opt, err := build(current)
		if err != nil {
			return
		}
		tr, err := ode.Integrate(p, m, opt)
		if err != nil {
			return
		}
		score := objective(tr)
		if math.IsNaN(score) || score >= best {
			return
		}
		best = score
		bestParams = make(map[string]float64, len(current))
		for k, v := range current {
			bestParams[k] = v
		}
	})

	if bestParams == nil {
		return nil, 0, ErrNoCandidate
	}
	return bestParams, best, nil
}

func (g *GridSearch) walk(depth int, current map[string]float64, visit func(map[string]float64)) {
	if depth == len(g.names) {
		visit(current)
		return
	}
	for _, val := range g.ranges[depth] {
		current[g.names[depth]] = val
		g.walk(depth+1, current, visit)
	}
	delete(current, g.names[depth])
}

// Minimize finds a local minimum of a smooth scalar function by
// driving its exact derivative to zero. The second derivative comes
// from the same Taylor evaluation, so each step is a true Newton step
// on f'.
func Minimize(f func(num.Real) num.Real, x0 float64, opt newton.Options) (float64, newton.Stats, error) {
	x := x0
	var st newton.Stats
	for st.Iterations = 0; st.Iterations < opt.MaxIter; st.Iterations++ {
		n, err := ad.Derivative(f, x, 2)
		if err != nil {
			return 0, st, err
		}
		d1, d2 := n.Deriv(1), n.Deriv(2)
		st.Residual = math.Abs(d1)
		if st.Residual < opt.Tol {
			return x, st, nil
		}
		if d2 == 0 {
			return 0, st, &newton.SolveError{Iterations: st.Iterations, Residual: st.Residual,
				Last: []float64{x}, Err: newton.ErrSingularJacobian}
		}
		x -= d1 / d2
	}
	return 0, st, &newton.SolveError{Iterations: st.Iterations, Residual: st.Residual,
		Last: []float64{x}, Err: newton.ErrNonConvergence}
}
