package ad

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/odelab/internal/num"
)

// Jacobian computes the matrix of first partials of f at x by
// evaluating f once per input dimension with that dimension seeded as
// the order-1 AD variable. Exact to floating-point precision; cost is
// len(x) evaluations of f.
func Jacobian(f func(num.Vector) num.Vector, x []float64) (jac *mat.Dense, err error) {
	defer catch(&err)
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("ad: jacobian at empty point")
	}
	for j := 0; j < n; j++ {
		v := make(num.Vector, n)
		for i := range v {
			if i == j {
				v[i] = Variable(x[i], 1)
			} else {
				v[i] = Constant(x[i], 1)
			}
		}
		fx := f(v)
		if jac == nil {
			if len(fx) == 0 {
				return nil, fmt.Errorf("ad: jacobian of empty-valued function")
			}
			jac = mat.NewDense(len(fx), n, nil)
		}
		for i, r := range fx {
			jac.Set(i, j, firstCoeff(r))
		}
	}
	return jac, nil
}

// firstCoeff extracts the directional derivative from one output
// component. A component that never touched the seed collapses to a
// Scalar and has derivative zero.
func firstCoeff(r num.Real) float64 {
	if n, ok := r.(*Number); ok {
		return n.Coeff(1)
	}
	return 0
}
