package ode

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/odelab/internal/num"
)

// System is a right-hand side dy/dt = f(t, y), written generically
// over the numeric abstraction so the engine can evaluate it over
// plain scalars and the AD engine can differentiate the same code.
type System interface {
	Dim() int
	Derive(t num.Real, y num.Vector) num.Vector
}

// Func adapts a plain closure to System.
func Func(dim int, f func(t num.Real, y num.Vector) num.Vector) System {
	return funcSystem{dim: dim, f: f}
}

type funcSystem struct {
	dim int
	f   func(t num.Real, y num.Vector) num.Vector
}

func (s funcSystem) Dim() int { return s.dim }
func (s funcSystem) Derive(t num.Real, y num.Vector) num.Vector {
	return s.f(t, y)
}

// Problem is one immutable integration setup. Jacobian is the optional
// analytic ∂f/∂y; when nil, implicit steps differentiate the system
// with the AD engine instead.
type Problem struct {
	System   System
	T0, T1   float64
	H        float64
	Y0       []float64
	Jacobian func(t float64, y []float64) (*mat.Dense, error)
}

func (p Problem) validate() error {
	if p.System == nil {
		return fmt.Errorf("ode: nil system")
	}
	if len(p.Y0) != p.System.Dim() {
		return fmt.Errorf("ode: initial state has %d components, system wants %d", len(p.Y0), p.System.Dim())
	}
	if len(p.Y0) == 0 {
		return fmt.Errorf("ode: empty state")
	}
	if p.T1 < p.T0 {
		return fmt.Errorf("ode: t1 %v before t0 %v", p.T1, p.T0)
	}
	if p.T1 > p.T0 && p.H <= 0 {
		return fmt.Errorf("ode: step size must be positive, got %v", p.H)
	}
	return nil
}

// Trace is the authoritative output of a run: the ordered (t, y)
// sequence, appended to exactly once per committed step.
type Trace struct {
	Times  []float64
	States [][]float64
}

func newTrace(capHint int) *Trace {
	return &Trace{
		Times:  make([]float64, 0, capHint),
		States: make([][]float64, 0, capHint),
	}
}

func (tr *Trace) append(t float64, y []float64) {
	c := make([]float64, len(y))
	copy(c, y)
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, c)
}

func (tr *Trace) Len() int { return len(tr.Times) }

// Last returns the most recent committed pair.
func (tr *Trace) Last() (float64, []float64) {
	i := len(tr.Times) - 1
	return tr.Times[i], tr.States[i]
}

// Component extracts one state component across the whole trace.
func (tr *Trace) Component(j int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[j]
	}
	return out
}
