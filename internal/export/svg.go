// Package export renders traces to standalone SVG documents, for when
// a terminal chart is not enough.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/odelab/internal/ode"
)

type point struct{ x, y float64 }

// TimeSeriesSVG draws one state component against time.
func TimeSeriesSVG(tr *ode.Trace, component, width, height int, strokeColor string) string {
	if tr.Len() < 2 || component >= len(tr.States[0]) {
		return ""
	}
	pts := make([]point, tr.Len())
	data := tr.Component(component)
	for i := range pts {
		pts[i] = point{tr.Times[i], data[i]}
	}
	return polyline(pts, width, height, strokeColor)
}

// PhaseSVG draws component j against component i.
func PhaseSVG(tr *ode.Trace, i, j, width, height int, strokeColor string) string {
	if tr.Len() < 2 || i >= len(tr.States[0]) || j >= len(tr.States[0]) {
		return ""
	}
	xs := tr.Component(i)
	ys := tr.Component(j)
	pts := make([]point, len(xs))
	for k := range pts {
		pts[k] = point{xs[k], ys[k]}
	}
	return polyline(pts, width, height, strokeColor)
}

func polyline(points []point, width, height int, strokeColor string) string {
	minX, maxX := points[0].x, points[0].x
	minY, maxY := points[0].y, points[0].y
	for _, p := range points {
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.x - minX) / rangeX * float64(width)
		y := float64(height) - (p.y-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
