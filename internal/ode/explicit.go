package ode

// Explicit transition rules: pure functions of (t, y, h, f).

// stepEuler: y + h*f(t, y). Local truncation error O(h^2).
func (r *Run) stepEuler(t float64, y []float64, h float64) ([]float64, error) {
	dy, err := r.deriv(t, y)
	if err != nil {
		return nil, err
	}
	next := make([]float64, len(y))
	for i := range y {
		next[i] = y[i] + h*dy[i]
	}
	return next, nil
}

// stepRK4: the classical four-stage rule,
// y + h/6*(k1 + 2k2 + 2k3 + k4). Local truncation error O(h^5).
func (r *Run) stepRK4(t float64, y []float64, h float64) ([]float64, error) {
	n := len(y)
	stage := make([]float64, n)

	k1, err := r.deriv(t, y)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + 0.5*h*k1[i]
	}
	k2, err := r.deriv(t+0.5*h, stage)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + 0.5*h*k2[i]
	}
	k3, err := r.deriv(t+0.5*h, stage)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + h*k3[i]
	}
	k4, err := r.deriv(t+h, stage)
	if err != nil {
		return nil, err
	}

	next := make([]float64, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		next[i] = y[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next, nil
}
