package problems

import (
	"fmt"

	"github.com/san-kum/odelab/internal/num"
)

// VanDerPol is x'' = mu*(1 - x^2)*x' - x. Mild at mu near 1, stiff
// for large mu; the stiff regime is where the implicit methods earn
// their keep.
type VanDerPol struct {
	Mu float64
}

func NewVanDerPol() *VanDerPol { return &VanDerPol{Mu: 1.0} }

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(_ num.Real, y num.Vector) num.Vector {
	x, dx := y[0], y[1]
	one := x.Lift(1)
	acc := one.Sub(x.Mul(x)).Mul(dx).Mul(x.Lift(v.Mu)).Sub(x)
	return num.Vector{dx, acc}
}

func (v *VanDerPol) DefaultState() []float64 { return []float64{2, 0} }

func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{"mu": v.Mu}
}

func (v *VanDerPol) SetParam(name string, val float64) error {
	if name != "mu" {
		return fmt.Errorf("unknown param: %s", name)
	}
	v.Mu = val
	return nil
}
