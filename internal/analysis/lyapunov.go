package analysis

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Lyapunov estimates the largest Lyapunov exponent by tracking a
// perturbed companion trajectory one step at a time, accumulating the
// per step log separation growth and renormalizing the companion back
// to the reference distance after every step (Benettin's method).
// A positive value indicates chaos, a negative one contraction.
func Lyapunov(p ode.Problem, m ode.Method, opt ode.Options, perturbation float64) (float64, error) {
	if perturbation <= 0 {
		perturbation = 1e-8
	}

	ref, err := ode.NewRun(p, m, opt)
	if err != nil {
		return 0, err
	}

	pert := append([]float64(nil), p.Y0...)
	pert[0] += perturbation
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for !ref.Done() {
		t := ref.Time()
		if err := ref.Step(); err != nil {
			return 0, err
		}

		q := p
		q.T0 = t
		q.T1 = t + p.H
		q.Y0 = pert
		comp, err := ode.NewRun(q, m, opt)
		if err != nil {
			return 0, err
		}
		if err := comp.Step(); err != nil {
			return 0, err
		}

		a, b := ref.State(), comp.State()
		sep := 0.0
		for i := range a {
			d := b[i] - a[i]
			sep += d * d
		}
		sep = math.Sqrt(sep)

		if sep == 0 {
			// The pair collapsed; re-seed and skip this sample.
			pert = append([]float64(nil), a...)
			pert[0] += d0
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for i := range a {
			pert[i] = a[i] + (b[i]-a[i])*scale
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * p.H), nil
}
