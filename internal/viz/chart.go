package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ode"
)

// PlotTrace renders each state component of a trace as its own
// asciigraph chart, at most maxCharts of them.
func PlotTrace(tr *ode.Trace, width, height, maxCharts int) string {
	if tr.Len() == 0 {
		return Subtle.Render("empty trace")
	}
	dim := len(tr.States[0])
	if dim > maxCharts {
		dim = maxCharts
	}

	var b strings.Builder
	for i := 0; i < dim; i++ {
		data := tr.Component(i)
		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("y%d vs time", i)),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// PhasePlot scatters component j against component i on a character
// canvas. Useful for orbits and limit cycles.
func PhasePlot(tr *ode.Trace, i, j, width, height int) string {
	if tr.Len() == 0 {
		return Subtle.Render("empty trace")
	}
	if i >= len(tr.States[0]) || j >= len(tr.States[0]) {
		return Subtle.Render("component index out of range")
	}

	xs := tr.Component(i)
	ys := tr.Component(j)

	xmin, xmax := minMax(xs)
	ymin, ymax := minMax(ys)
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}

	canvas := make([][]rune, height)
	for r := range canvas {
		canvas[r] = make([]rune, width)
		for c := range canvas[r] {
			canvas[r][c] = ' '
		}
	}

	for k := range xs {
		cx := int((xs[k] - xmin) / (xmax - xmin) * float64(width-1))
		cy := height - 1 - int((ys[k]-ymin)/(ymax-ymin)*float64(height-1))
		if cx >= 0 && cx < width && cy >= 0 && cy < height {
			canvas[cy][cx] = '·'
		}
	}
	// Mark start and end on top of the trail.
	mark := func(x, y float64, c rune) {
		cx := int((x - xmin) / (xmax - xmin) * float64(width-1))
		cy := height - 1 - int((y-ymin)/(ymax-ymin)*float64(height-1))
		if cx >= 0 && cx < width && cy >= 0 && cy < height {
			canvas[cy][cx] = c
		}
	}
	mark(xs[0], ys[0], 'o')
	mark(xs[len(xs)-1], ys[len(ys)-1], '●')

	var b strings.Builder
	b.WriteString(Subtle.Render(fmt.Sprintf("y%d (vertical) vs y%d (horizontal)", j, i)) + "\n")
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	b.WriteString(Subtle.Render(fmt.Sprintf("x: [%.3g, %.3g]  y: [%.3g, %.3g]", xmin, xmax, ymin, ymax)) + "\n")
	return b.String()
}

func minMax(v []float64) (float64, float64) {
	min, max := v[0], v[0]
	for _, x := range v {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}
