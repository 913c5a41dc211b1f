package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// ConvergencePoint is one row of a step halving study.
type ConvergencePoint struct {
	H     float64
	Error float64
	Order float64 // log2 ratio against the previous row, NaN on the first
}

// ObservedOrder integrates the problem at h, h/2, h/4, ... and compares
// the final state against the exact solution at t1. The log2 ratio of
// consecutive errors estimates the method's convergence order.
func ObservedOrder(p ode.Problem, m ode.Method, opt ode.Options, exact func(t float64) []float64, levels int) ([]ConvergencePoint, error) {
	if levels < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 levels, got %d", levels)
	}
	ref := exact(p.T1)

	points := make([]ConvergencePoint, 0, levels)
	h := p.H
	for i := 0; i < levels; i++ {
		q := p
		q.H = h
		tr, err := ode.Integrate(q, m, opt)
		if err != nil {
			return points, fmt.Errorf("analysis: h=%g: %w", h, err)
		}
		_, last := tr.Last()
		e := maxAbsDiff(last, ref)

		pt := ConvergencePoint{H: h, Error: e, Order: math.NaN()}
		if i > 0 {
			prev := points[i-1].Error
			if e > 0 && prev > 0 {
				pt.Order = math.Log2(prev / e)
			}
		}
		points = append(points, pt)
		h /= 2
	}
	return points, nil
}

func maxAbsDiff(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}
