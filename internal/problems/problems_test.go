package problems

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/num"
	"github.com/san-kum/odelab/internal/ode"
)

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		sys, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if got := len(sys.DefaultState()); got != sys.Dim() {
			t.Errorf("%s: default state has %d components, Dim() = %d", name, got, sys.Dim())
		}
		if err := sys.SetParam("no_such_param", 1); err == nil {
			t.Errorf("%s: bogus param accepted", name)
		}
	}
	if _, err := New("three_body"); err == nil {
		t.Error("unknown system accepted")
	}
}

func TestScalarAndADInstantiationsAgree(t *testing.T) {
	// The value part of an AD evaluation must match the plain scalar
	// evaluation exactly: one code path, two representations.
	for _, name := range Names() {
		sys, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		x := sys.DefaultState()

		plain, err := ad.Eval(func(v num.Vector) num.Vector {
			return sys.Derive(num.Scalar(0.3), v)
		}, x)
		if err != nil {
			t.Fatalf("%s: scalar eval: %v", name, err)
		}

		v := make(num.Vector, len(x))
		for i := range v {
			if i == 0 {
				v[i] = ad.Variable(x[i], 2)
			} else {
				v[i] = ad.Constant(x[i], 2)
			}
		}
		through := sys.Derive(ad.Constant(0.3, 2), v)
		for i := range plain {
			if got := through[i].Value(); math.Abs(got-plain[i]) > 1e-15 {
				t.Errorf("%s[%d]: AD value %v != scalar value %v", name, i, got, plain[i])
			}
		}
	}
}

func TestPendulumDerivative(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0
	out, err := ad.Eval(func(v num.Vector) num.Vector {
		return p.Derive(num.Scalar(0), v)
	}, []float64{math.Pi / 6, 0})
	if err != nil {
		t.Fatal(err)
	}
	// At rest, alpha = -g/L * sin(theta) for the unit pendulum.
	want := -9.81 * math.Sin(math.Pi/6)
	if math.Abs(out[1]-want) > 1e-12 {
		t.Errorf("alpha = %v, want %v", out[1], want)
	}
	if out[0] != 0 {
		t.Errorf("theta' = %v, want 0", out[0])
	}
}

func TestLogisticEquilibrium(t *testing.T) {
	l := NewLogistic()
	out, err := ad.Eval(func(v num.Vector) num.Vector {
		return l.Derive(num.Scalar(0), v)
	}, []float64{l.K})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out[0]) > 1e-12 {
		t.Errorf("derivative at carrying capacity = %v, want 0", out[0])
	}
}

func TestHarmonicEnergyConservedByGL4(t *testing.T) {
	h := NewHarmonic()
	p := ode.Problem{System: h, T0: 0, T1: 10, H: 0.05, Y0: h.DefaultState()}
	tr, err := ode.Integrate(p, ode.GaussLegendre4, ode.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	e0 := h.Energy(tr.States[0])
	_, last := tr.Last()
	e1 := h.Energy(last)
	if math.Abs(e1-e0)/e0 > 1e-6 {
		t.Errorf("energy drift %v, want < 1e-6 (Gauss methods are symplectic)", math.Abs(e1-e0)/e0)
	}
}

func TestStiffExplicitVsImplicit(t *testing.T) {
	s := NewStiff()
	p := ode.Problem{System: s, T0: 0, T1: 0.5, H: 0.01, Y0: s.DefaultState()}

	// h*fast = 10: explicit Euler must blow up.
	tr, err := ode.Integrate(p, ode.Euler, ode.DefaultOptions())
	if err == nil {
		_, last := tr.Last()
		if math.Abs(last[0]) < 1 {
			t.Error("explicit euler unexpectedly stable on the stiff system")
		}
	}

	// Backward Euler handles the same step comfortably.
	tr, err = ode.Integrate(p, ode.BackwardEuler, ode.DefaultOptions())
	if err != nil {
		t.Fatalf("backward euler: %v", err)
	}
	_, last := tr.Last()
	if math.Abs(last[0]) > 1 {
		t.Errorf("backward euler fast component = %v, want decayed", last[0])
	}
	if math.Abs(last[1]-math.Exp(-0.5)) > 0.01 {
		t.Errorf("slow component = %v, want ~%v", last[1], math.Exp(-0.5))
	}
}
