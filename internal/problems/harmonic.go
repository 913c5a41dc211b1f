package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// Harmonic is the undamped oscillator x'' = -omega^2 x as a first
// order pair (x, v). Exact solution stays on a circle in phase space,
// which makes energy drift easy to spot.
type Harmonic struct {
	Omega float64
}

func NewHarmonic() *Harmonic { return &Harmonic{Omega: 1.0} }

func (h *Harmonic) Dim() int { return 2 }

func (h *Harmonic) Derive(_ num.Real, y num.Vector) num.Vector {
	w2 := -h.Omega * h.Omega
	return num.Vector{y[1], y[0].Mul(y[0].Lift(w2))}
}

func (h *Harmonic) DefaultState() []float64 { return []float64{1, 0} }

func (h *Harmonic) Energy(y []float64) float64 {
	return 0.5*y[1]*y[1] + 0.5*h.Omega*h.Omega*y[0]*y[0]
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"omega": h.Omega}
}

func (h *Harmonic) SetParam(name string, v float64) error {
	if name != "omega" {
		return fmt.Errorf("unknown param: %s", name)
	}
	h.Omega = v
	return nil
}
