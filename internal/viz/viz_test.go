package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if got := len([]rune(s)); got != 8 {
		t.Errorf("sparkline width = %d, want 8", got)
	}
	if Sparkline(nil, 10) != "" {
		t.Error("empty input should render empty")
	}
	// Constant data must not divide by zero.
	if s := Sparkline([]float64{2, 2, 2}, 3); s == "" {
		t.Error("constant data rendered empty")
	}
}

func TestPhasePlotMarksEndpoints(t *testing.T) {
	tr := &ode.Trace{
		Times:  []float64{0, 1, 2},
		States: [][]float64{{0, 1}, {0.5, 0.5}, {1, 0}},
	}
	out := PhasePlot(tr, 0, 1, 20, 10)
	if !strings.ContainsRune(out, 'o') || !strings.ContainsRune(out, '●') {
		t.Error("start/end markers missing")
	}
	if PhasePlot(tr, 0, 5, 20, 10) == "" {
		t.Error("out of range index should still render a message")
	}
}
