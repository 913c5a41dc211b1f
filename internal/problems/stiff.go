package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// Stiff is a two-component linear system with widely separated decay
// rates. Explicit methods need h below 2/fast to stay stable; the
// implicit ones do not care.
type Stiff struct {
	Fast float64
	Slow float64
}

func NewStiff() *Stiff { return &Stiff{Fast: 1000.0, Slow: 1.0} }

func (s *Stiff) Dim() int { return 2 }

func (s *Stiff) Derive(_ num.Real, y num.Vector) num.Vector {
	return num.Vector{
		y[0].Mul(y[0].Lift(-s.Fast)),
		y[1].Mul(y[1].Lift(-s.Slow)),
	}
}

func (s *Stiff) DefaultState() []float64 { return []float64{1, 1} }

func (s *Stiff) GetParams() map[string]float64 {
	return map[string]float64{"fast": s.Fast, "slow": s.Slow}
}

func (s *Stiff) SetParam(name string, v float64) error {
	switch name {
	case "fast":
		s.Fast = v
	case "slow":
		s.Slow = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
