package ode

import "fmt"

// Method selects the transition rule. The set is closed; the engine
// dispatches on the tag in exactly one place.
type Method int

const (
	Euler Method = iota
	RK4
	BackwardEuler
	GaussLegendre4
)

var methodNames = map[Method]string{
	Euler:          "euler",
	RK4:            "rk4",
	BackwardEuler:  "backward_euler",
	GaussLegendre4: "gl4",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Implicit reports whether stepping requires a nonlinear solve.
func (m Method) Implicit() bool {
	return m == BackwardEuler || m == GaussLegendre4
}

// Order is the global order of accuracy.
func (m Method) Order() int {
	switch m {
	case Euler, BackwardEuler:
		return 1
	case RK4, GaussLegendre4:
		return 4
	}
	return 0
}

// ParseMethod maps a config/CLI name to its Method tag.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("ode: unknown method %q", s)
}

// MethodNames lists the accepted names, for CLI help.
func MethodNames() []string {
	return []string{"euler", "rk4", "backward_euler", "gl4"}
}

func errUnknownMethod(m Method) error {
	return fmt.Errorf("ode: unknown method %v", m)
}
