package ode

import (
	"math"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/newton"
	"github.com/san-kum/odelab/internal/num"
)

// Options configures the nonlinear solve inside implicit steps.
// Explicit methods ignore it.
type Options struct {
	Newton newton.Options
}

func DefaultOptions() Options {
	return Options{Newton: newton.DefaultOptions()}
}

// Run is the integration state machine: current (t, y), step counter,
// and the trace built so far. It advances one fixed step at a time so
// callers can observe progress; Integrate drives it to completion.
type Run struct {
	prob   Problem
	method Method
	opt    Options

	t     float64
	y     []float64
	step  int
	steps int
	trace *Trace
}

// NewRun validates the problem and seeds the state machine with the
// initial condition. The step count is fixed up front:
// round((t1-t0)/h), so t0 == t1 yields a run that is already done and
// a trace holding only the initial state.
func NewRun(p Problem, m Method, opt Options) (*Run, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	steps := 0
	if p.T1 > p.T0 {
		steps = int(math.Round((p.T1 - p.T0) / p.H))
		if steps < 1 {
			steps = 1
		}
	}
	r := &Run{
		prob:   p,
		method: m,
		opt:    opt,
		t:      p.T0,
		y:      append([]float64(nil), p.Y0...),
		steps:  steps,
		trace:  newTrace(steps + 1),
	}
	r.trace.append(r.t, r.y)
	return r, nil
}

func (r *Run) Done() bool       { return r.step >= r.steps }
func (r *Run) Time() float64    { return r.t }
func (r *Run) State() []float64 { return append([]float64(nil), r.y...) }
func (r *Run) Steps() int       { return r.steps }
func (r *Run) StepsTaken() int  { return r.step }
func (r *Run) Trace() *Trace    { return r.trace }

// Step advances the machine by one transition. A step either fully
// commits a new (t, y) to the trace or returns a *StepError carrying
// the last committed state; nothing partial is ever recorded.
func (r *Run) Step() error {
	if r.Done() {
		return nil
	}
	h := r.prob.H

	var next []float64
	var err error

	// The one dispatch point over the method tag.
	switch r.method {
	case Euler:
		next, err = r.stepEuler(r.t, r.y, h)
	case RK4:
		next, err = r.stepRK4(r.t, r.y, h)
	case BackwardEuler:
		next, err = r.stepBackwardEuler(r.t, r.y, h)
	case GaussLegendre4:
		next, err = r.stepGaussLegendre4(r.t, r.y, h)
	default:
		err = &StepError{Step: r.step, Time: r.t, Method: r.method, Last: r.State(),
			Err: errUnknownMethod(r.method)}
	}

	if err != nil {
		if se, ok := err.(*StepError); ok {
			return se
		}
		return &StepError{Step: r.step, Time: r.t, Method: r.method, Last: r.State(), Err: err}
	}
	if !finite(next) {
		return &StepError{Step: r.step, Time: r.t, Method: r.method, Last: r.State(), Err: ErrUnstable}
	}

	r.step++
	r.t = r.prob.T0 + float64(r.step)*h
	r.y = next
	r.trace.append(r.t, r.y)
	return nil
}

// Integrate drives a run to its terminal state. On failure the partial
// trace up to the last good state is returned alongside the error.
func Integrate(p Problem, m Method, opt Options) (*Trace, error) {
	r, err := NewRun(p, m, opt)
	if err != nil {
		return nil, err
	}
	for !r.Done() {
		if err := r.Step(); err != nil {
			return r.trace, err
		}
	}
	return r.trace, nil
}

// deriv evaluates the right-hand side at a plain point.
func (r *Run) deriv(t float64, y []float64) ([]float64, error) {
	return ad.Eval(func(v num.Vector) num.Vector {
		return r.prob.System.Derive(num.Scalar(t), v)
	}, y)
}

func finite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
