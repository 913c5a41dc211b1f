package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Report summarizes the qualitative behavior of one trajectory.
type Report struct {
	Bounded     bool    // stayed finite and below the blow up threshold
	Blew        bool    // aborted with a non finite state
	MaxNorm     float64 // largest max norm over the trace
	SignChanges int     // sign flips of the first component
	Final       []float64
}

// Probe integrates the problem and classifies the outcome. Growth past
// 1e6 times the initial norm counts as unbounded even when every state
// stays finite.
func Probe(p ode.Problem, m ode.Method, opt ode.Options) (Report, error) {
	tr, err := ode.Integrate(p, m, opt)
	if err != nil && !errors.Is(err, ode.ErrUnstable) {
		return Report{}, err
	}

	rep := Report{Bounded: true, Blew: errors.Is(err, ode.ErrUnstable)}
	if tr.Len() == 0 {
		return rep, nil
	}

	base := maxNorm(tr.States[0])
	if base == 0 {
		base = 1
	}
	prevSign := 0
	for _, y := range tr.States {
		n := maxNorm(y)
		if n > rep.MaxNorm {
			rep.MaxNorm = n
		}
		s := sign(y[0])
		if s != 0 && prevSign != 0 && s != prevSign {
			rep.SignChanges++
		}
		if s != 0 {
			prevSign = s
		}
	}
	if rep.Blew || rep.MaxNorm > 1e6*base {
		rep.Bounded = false
	}
	_, rep.Final = tr.Last()
	return rep, nil
}

func maxNorm(y []float64) float64 {
	m := 0.0
	for _, v := range y {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
