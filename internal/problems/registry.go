package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/ode"
)

// Configurable is the parameter surface the CLI tweaks.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// System is what every preset provides: a right-hand side plus a
// sensible starting point and adjustable parameters.
type System interface {
	ode.System
	Configurable
	DefaultState() []float64
}

var registry = map[string]func() System{
	"decay":     func() System { return NewDecay() },
	"logistic":  func() System { return NewLogistic() },
	"harmonic":  func() System { return NewHarmonic() },
	"pendulum":  func() System { return NewPendulum() },
	"vanderpol": func() System { return NewVanDerPol() },
	"lorenz":    func() System { return NewLorenz() },
	"stiff":     func() System { return NewStiff() },
}

// New builds a fresh preset by name.
func New(name string) (System, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("problems: unknown system %q", name)
	}
	return mk(), nil
}

// Names lists the registered presets, sorted for stable CLI output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
