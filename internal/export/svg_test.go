package export

import (
	"strings"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func testTrace() *ode.Trace {
	return &ode.Trace{
		Times:  []float64{0, 0.5, 1},
		States: [][]float64{{1, 0}, {0.88, -0.48}, {0.54, -0.84}},
	}
}

func TestTimeSeriesSVG(t *testing.T) {
	svg := TimeSeriesSVG(testTrace(), 0, 400, 200, "#00ff00")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color not applied")
	}
	if strings.Count(svg, "L") != 2 {
		t.Errorf("want 2 line segments, got %d", strings.Count(svg, "L"))
	}
}

func TestPhaseSVG(t *testing.T) {
	if svg := PhaseSVG(testTrace(), 0, 1, 400, 400, "#fff"); svg == "" {
		t.Error("phase svg empty")
	}
	if svg := PhaseSVG(testTrace(), 0, 9, 400, 400, "#fff"); svg != "" {
		t.Error("out of range component should yield empty output")
	}
}

func TestDegenerateTrace(t *testing.T) {
	tr := &ode.Trace{Times: []float64{0}, States: [][]float64{{1}}}
	if TimeSeriesSVG(tr, 0, 100, 100, "#fff") != "" {
		t.Error("single point trace should yield empty output")
	}
}
