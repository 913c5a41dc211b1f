package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Good   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	Warn   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Sparkline renders values as a compact bar strip, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// ProgressBar renders completion as a fixed width bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Title.Render(strings.Repeat("━", filled)) +
		Dimmer.Render(strings.Repeat("─", width-filled))
}
