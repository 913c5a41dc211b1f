package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

func (l *Lorenz) Dim() int { return 3 }

func (l *Lorenz) Derive(_ num.Real, y num.Vector) num.Vector {
	x, yy, z := y[0], y[1], y[2]
	return num.Vector{
		yy.Sub(x).Mul(x.Lift(l.Sigma)),
		x.Mul(x.Lift(l.Rho).Sub(z)).Sub(yy),
		x.Mul(yy).Sub(z.Mul(z.Lift(l.Beta))),
	}
}

func (l *Lorenz) DefaultState() []float64 { return []float64{1, 1, 1} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.Sigma, "rho": l.Rho, "beta": l.Beta}
}

func (l *Lorenz) SetParam(name string, v float64) error {
	switch name {
	case "sigma":
		l.Sigma = v
	case "rho":
		l.Rho = v
	case "beta":
		l.Beta = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
