package num

import "math"

// Vector is an ordered sequence of Real elements. The length is fixed
// for the lifetime of one integration or solve.
type Vector []Real

// NewVector lifts a plain float64 slice into a Vector of Scalars.
func NewVector(vs []float64) Vector {
	v := make(Vector, len(vs))
	for i, x := range vs {
		v[i] = Scalar(x)
	}
	return v
}

// Values extracts the value part of every element.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v))
	for i, r := range v {
		out[i] = r.Value()
	}
	return out
}

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) Add(o Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Add(o[i])
	}
	return out
}

func (v Vector) Sub(o Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Sub(o[i])
	}
	return out
}

// Scale multiplies every element by the plain factor f.
func (v Vector) Scale(f float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Mul(v[i].Lift(f))
	}
	return out
}

// Norm is the Euclidean norm of the value parts.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, r := range v {
		x := r.Value()
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsValid reports whether every value part is finite.
func (v Vector) IsValid() bool {
	for _, r := range v {
		x := r.Value()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
