package ad

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/num"
)

func TestJacobianLinearEqualsMatrix(t *testing.T) {
	// f(x) = A x for a fixed A, including a singular A
	as := [][]float64{
		{2, -1, 0.5, 3, 1, -2, 0, 4, 7},      // invertible 3x3
		{1, 2, 3, 2, 4, 6, 0, 0, 1},          // rank deficient
		{0, 0, 0, 0, 0, 0, 0, 0, 0},          // zero
	}
	x := []float64{0.3, -1.2, 2.5}

	for _, a := range as {
		f := func(v num.Vector) num.Vector {
			out := make(num.Vector, 3)
			for i := 0; i < 3; i++ {
				s := v[0].Lift(0)
				for j := 0; j < 3; j++ {
					s = s.Add(v[j].Mul(v[j].Lift(a[i*3+j])))
				}
				out[i] = s
			}
			return out
		}
		jac, err := Jacobian(f, x)
		if err != nil {
			t.Fatalf("Jacobian: %v", err)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if got, want := jac.At(i, j), a[i*3+j]; got != want {
					t.Errorf("jac[%d,%d] = %v, want %v", i, j, got, want)
				}
			}
		}
	}
}

func TestJacobianNonlinear(t *testing.T) {
	// f(x,y) = (x*y, sin(x)+y^2)
	f := func(v num.Vector) num.Vector {
		return num.Vector{
			v[0].Mul(v[1]),
			v[0].Sin().Add(v[1].Mul(v[1])),
		}
	}
	x, y := 1.1, -0.7
	jac, err := Jacobian(f, []float64{x, y})
	if err != nil {
		t.Fatal(err)
	}
	want := [2][2]float64{
		{y, x},
		{math.Cos(x), 2 * y},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := jac.At(i, j); math.Abs(got-want[i][j]) > 1e-12 {
				t.Errorf("jac[%d,%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestJacobianNonSquare(t *testing.T) {
	// f: R^2 -> R^3
	f := func(v num.Vector) num.Vector {
		return num.Vector{
			v[0].Add(v[1]),
			v[0].Mul(v[1]),
			v[1].Exp(),
		}
	}
	jac, err := Jacobian(f, []float64{2, 0})
	if err != nil {
		t.Fatal(err)
	}
	r, c := jac.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", r, c)
	}
	if got := jac.At(2, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("d(e^y)/dy at y=0 = %v, want 1", got)
	}
	if got := jac.At(2, 0); got != 0 {
		t.Errorf("d(e^y)/dx = %v, want 0", got)
	}
}

func TestJacobianRecoversDomainFailure(t *testing.T) {
	f := func(v num.Vector) num.Vector {
		return num.Vector{v[0].Log()}
	}
	// The scalar path follows IEEE semantics and yields NaN.
	out, err := Eval(f, []float64{-2})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !math.IsNaN(out[0]) {
		t.Errorf("scalar log(-2) = %v, want NaN", out[0])
	}
	// The AD recurrence fails fast and the entry point recovers it.
	if _, err := Jacobian(f, []float64{-2}); err == nil {
		t.Error("Jacobian of log at -2: want error, got nil")
	}
}

func BenchmarkJacobian10(b *testing.B) {
	n := 10
	f := func(v num.Vector) num.Vector {
		out := make(num.Vector, n)
		for i := range out {
			out[i] = v[i].Sin().Mul(v[(i+1)%n])
		}
		return out
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * 0.1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Jacobian(f, x); err != nil {
			b.Fatal(err)
		}
	}
}
