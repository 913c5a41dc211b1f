package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// Logistic growth dy/dt = r*y*(1 - y/k).
type Logistic struct {
	R float64
	K float64
}

func NewLogistic() *Logistic { return &Logistic{R: 2.0, K: 10.0} }

func (l *Logistic) Dim() int { return 1 }

func (l *Logistic) Derive(_ num.Real, y num.Vector) num.Vector {
	one := y[0].Lift(1)
	return num.Vector{
		y[0].Mul(y[0].Lift(l.R)).Mul(one.Sub(y[0].Div(y[0].Lift(l.K)))),
	}
}

func (l *Logistic) DefaultState() []float64 { return []float64{0.5} }

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.R, "k": l.K}
}

func (l *Logistic) SetParam(name string, v float64) error {
	switch name {
	case "r":
		l.R = v
	case "k":
		l.K = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
