package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// Pendulum is the damped nonlinear pendulum. The sin in the torque
// term exercises the elementary-function recurrences of the AD engine
// whenever an implicit method needs the Jacobian.
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{Mass: 1.0, Length: 1.0, Damping: 0.1, Gravity: 9.81}
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(_ num.Real, y num.Vector) num.Vector {
	theta, omega := y[0], y[1]
	ml2 := p.Mass * p.Length * p.Length
	alpha := omega.Mul(omega.Lift(-p.Damping)).
		Sub(theta.Sin().Mul(theta.Lift(p.Mass * p.Gravity * p.Length))).
		Div(omega.Lift(ml2))
	return num.Vector{omega, alpha}
}

func (p *Pendulum) DefaultState() []float64 { return []float64{0.5, 0} }

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    p.Mass,
		"length":  p.Length,
		"damping": p.Damping,
		"gravity": p.Gravity,
	}
}

func (p *Pendulum) SetParam(name string, v float64) error {
	switch name {
	case "mass":
		p.Mass = v
	case "length":
		p.Length = v
	case "damping":
		p.Damping = v
	case "gravity":
		p.Gravity = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
