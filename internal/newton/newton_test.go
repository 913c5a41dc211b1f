package newton

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/odelab/internal/num"
)

func TestSolveSqrtTwo(t *testing.T) {
	// x^2 - 2 = 0 from x0 = 1 must reach sqrt(2) within 1e-10 in at
	// most 10 iterations.
	F := func(v num.Vector) num.Vector {
		return num.Vector{v[0].Mul(v[0]).Sub(v[0].Lift(2))}
	}
	x, st, err := Solve(F, nil, []float64{1}, Options{Tol: 1e-10, MaxIter: 10})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(x[0]-math.Sqrt2) > 1e-10 {
		t.Errorf("root = %v, want %v", x[0], math.Sqrt2)
	}
	if st.Iterations > 10 {
		t.Errorf("took %d iterations, want <= 10", st.Iterations)
	}
}

func TestSolveCoupledSystem(t *testing.T) {
	// x^2 + y^2 = 4, x*y = 1
	F := func(v num.Vector) num.Vector {
		return num.Vector{
			v[0].Mul(v[0]).Add(v[1].Mul(v[1])).Sub(v[0].Lift(4)),
			v[0].Mul(v[1]).Sub(v[0].Lift(1)),
		}
	}
	x, _, err := Solve(F, nil, []float64{2, 0.5}, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if r := x[0]*x[0] + x[1]*x[1]; math.Abs(r-4) > 1e-8 {
		t.Errorf("x^2+y^2 = %v, want 4", r)
	}
	if p := x[0] * x[1]; math.Abs(p-1) > 1e-8 {
		t.Errorf("x*y = %v, want 1", p)
	}
}

func TestSolveSingularJacobian(t *testing.T) {
	// F(x, y) = (x + y, x + y): Jacobian is rank one everywhere.
	F := func(v num.Vector) num.Vector {
		s := v[0].Add(v[1])
		return num.Vector{s.Sub(v[0].Lift(1)), s.Sub(v[0].Lift(2))}
	}
	_, _, err := Solve(F, nil, []float64{0, 0}, DefaultOptions())
	if !errors.Is(err, ErrSingularJacobian) {
		t.Errorf("err = %v, want ErrSingularJacobian", err)
	}
	var se *SolveError
	if !errors.As(err, &se) {
		t.Fatalf("err %T does not carry solve context", err)
	}
	if se.Last == nil {
		t.Error("SolveError.Last is nil, want last iterate")
	}
}

func TestSolveNonConvergence(t *testing.T) {
	// x^2 + 1 = 0 has no real root.
	F := func(v num.Vector) num.Vector {
		return num.Vector{v[0].Mul(v[0]).Add(v[0].Lift(1))}
	}
	_, st, err := Solve(F, nil, []float64{3}, Options{Tol: 1e-12, MaxIter: 25})
	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("err = %v, want ErrNonConvergence", err)
	}
	if st.Iterations != 25 {
		t.Errorf("iterations = %d, want 25", st.Iterations)
	}
}

func TestSolveAnalyticJacobianAgrees(t *testing.T) {
	F := func(v num.Vector) num.Vector {
		return num.Vector{v[0].Mul(v[0]).Sub(v[0].Lift(2))}
	}
	withAD, _, err := Solve(F, nil, []float64{1}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	withAnalytic, _, err := Solve(F, analyticSquare, []float64{1}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if withAD[0] != withAnalytic[0] {
		t.Errorf("AD route %v != analytic route %v", withAD[0], withAnalytic[0])
	}
}

func TestFindRootNewton(t *testing.T) {
	f := func(x num.Real) num.Real { return x.Mul(x).Sub(x.Lift(2)) }
	x, st, err := FindRoot(f, 1, Options{Tol: 1e-10, MaxIter: 10})
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-10 {
		t.Errorf("root = %v, want sqrt(2)", x)
	}
	if st.Iterations > 10 {
		t.Errorf("iterations = %d, want <= 10", st.Iterations)
	}
}

func TestFindRootZeroDerivative(t *testing.T) {
	// f(x) = x^2 + 1 from the stationary point x = 0.
	f := func(x num.Real) num.Real { return x.Mul(x).Add(x.Lift(1)) }
	_, _, err := FindRoot(f, 0, DefaultOptions())
	if !errors.Is(err, ErrSingularJacobian) {
		t.Errorf("err = %v, want ErrSingularJacobian", err)
	}
}

func TestFindRootSecant(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	x, _, err := FindRootSecant(f, 0, 1, Options{Tol: 1e-12, MaxIter: 50})
	if err != nil {
		t.Fatalf("secant: %v", err)
	}
	if math.Abs(math.Cos(x)-x) > 1e-12 {
		t.Errorf("cos(x)-x = %v at x = %v, want 0", math.Cos(x)-x, x)
	}
}

func TestFindRootBisect(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	x, _, err := FindRootBisect(f, 1, 2, Options{Tol: 1e-9, MaxIter: 100})
	if err != nil {
		t.Fatalf("bisect: %v", err)
	}
	if math.Abs(f(x)) > 1e-9 {
		t.Errorf("f(%v) = %v, want ~0", x, f(x))
	}
}

func TestFindRootBisectNoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, _, err := FindRootBisect(f, -1, 1, DefaultOptions())
	if !errors.Is(err, ErrNoBracket) {
		t.Errorf("err = %v, want ErrNoBracket", err)
	}
}

// analyticSquare is the hand-written Jacobian of x^2 - 2.
func analyticSquare(x []float64) (*mat.Dense, error) {
	return mat.NewDense(1, 1, []float64{2 * x[0]}), nil
}
