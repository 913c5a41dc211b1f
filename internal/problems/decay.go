package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// Decay is dy/dt = -lambda*y, the canonical stiffness and accuracy
// testbed with exact solution y0*exp(-lambda*t).
type Decay struct {
	Lambda float64
}

func NewDecay() *Decay { return &Decay{Lambda: 1.0} }

func (d *Decay) Dim() int { return 1 }

func (d *Decay) Derive(_ num.Real, y num.Vector) num.Vector {
	return num.Vector{y[0].Mul(y[0].Lift(-d.Lambda))}
}

func (d *Decay) DefaultState() []float64 { return []float64{1} }

func (d *Decay) GetParams() map[string]float64 {
	return map[string]float64{"lambda": d.Lambda}
}

func (d *Decay) SetParam(name string, v float64) error {
	if name != "lambda" {
		return fmt.Errorf("unknown param: %s", name)
	}
	d.Lambda = v
	return nil
}
