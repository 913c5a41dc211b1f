package analysis

// Linspace returns n points from a to b inclusive. n < 2 collapses to
// a single point at a.
func Linspace(a, b float64, n int) []float64 {
	if n < 2 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// Seq returns a, a+step, ... up to and including b when it lands on
// the grid. A non-positive step or empty range yields nil.
func Seq(a, b, step float64) []float64 {
	if step <= 0 || b < a {
		return nil
	}
	n := int((b-a)/step) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, a+float64(i)*step)
	}
	return out
}
