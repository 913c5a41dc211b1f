// Package viz renders traces in the terminal: component time series
// via asciigraph, a character canvas phase plot, and the shared
// lipgloss styles used by the CLI and the live view.
package viz
