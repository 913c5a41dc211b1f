package optim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/newton"
	"github.com/san-kum/odelab/internal/num"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

func TestGridSearchFindsDecayRate(t *testing.T) {
	// Recover lambda = 2 by matching the final value of a decay run
	// against the exact value exp(-2).
	target := math.Exp(-2)
	build := func(params map[string]float64) (ode.Problem, ode.Method, ode.Options, error) {
		d := problems.NewDecay()
		if err := d.SetParam("lambda", params["lambda"]); err != nil {
			return ode.Problem{}, 0, ode.Options{}, err
		}
		p := ode.Problem{System: d, T0: 0, T1: 1, H: 0.01, Y0: []float64{1}}
		return p, ode.RK4, ode.DefaultOptions(), nil
	}
	objective := func(tr *ode.Trace) float64 {
		_, last := tr.Last()
		return math.Abs(last[0] - target)
	}

	gs := NewGridSearch([]string{"lambda"}, [][]float64{{0.5, 1, 1.5, 2, 2.5, 3}})
	bestParams, bestScore, err := gs.Search(build, objective)
	if err != nil {
		t.Fatal(err)
	}
	if bestParams["lambda"] != 2 {
		t.Errorf("best lambda = %v, want 2", bestParams["lambda"])
	}
	if bestScore > 1e-6 {
		t.Errorf("best score = %v, want tiny", bestScore)
	}
}

func TestGridSearchAllFail(t *testing.T) {
	build := func(map[string]float64) (ode.Problem, ode.Method, ode.Options, error) {
		return ode.Problem{}, 0, ode.Options{}, errors.New("boom")
	}
	gs := NewGridSearch([]string{"a"}, [][]float64{{1, 2}})
	if _, _, err := gs.Search(build, func(*ode.Trace) float64 { return 0 }); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("err = %v, want ErrNoCandidate", err)
	}
}

func TestMinimizeQuadratic(t *testing.T) {
	// f(x) = (x-3)^2 + 1, minimum at x = 3. One Newton step on a
	// quadratic derivative lands exactly.
	f := func(x num.Real) num.Real {
		d := x.Sub(x.Lift(3))
		return d.Mul(d).Add(x.Lift(1))
	}
	x, st, err := Minimize(f, 0, newton.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-3) > 1e-10 {
		t.Errorf("minimum at %v, want 3", x)
	}
	if st.Iterations > 3 {
		t.Errorf("took %d iterations on a quadratic", st.Iterations)
	}
}

func TestMinimizeNonsmoothGuard(t *testing.T) {
	// f(x) = x has f'' = 0 everywhere, Newton on f' cannot proceed.
	f := func(x num.Real) num.Real { return x }
	_, _, err := Minimize(f, 1, newton.DefaultOptions())
	if !errors.Is(err, newton.ErrSingularJacobian) {
		t.Errorf("err = %v, want ErrSingularJacobian", err)
	}
}
