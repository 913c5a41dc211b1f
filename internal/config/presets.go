package config

// Presets pair a problem with step sizes and methods that show it off.
var Presets = map[string]map[string]*Config{
	"decay": {
		"basic": {
			Problem: "decay", Method: "rk4", T1: 5, H: 0.01,
		},
		"stiff": {
			Problem: "decay", Method: "backward_euler", T1: 1, H: 0.1,
			Params: map[string]float64{"lambda": 50},
		},
	},
	"harmonic": {
		"circle": {
			Problem: "harmonic", Method: "gl4", T1: 20, H: 0.05,
		},
		"drifting": {
			Problem: "harmonic", Method: "euler", T1: 20, H: 0.05,
		},
	},
	"pendulum": {
		"small": {
			Problem: "pendulum", Method: "rk4", T1: 20, H: 0.01,
			InitState: []float64{0.2, 0},
		},
		"large": {
			Problem: "pendulum", Method: "rk4", T1: 20, H: 0.01,
			InitState: []float64{2.5, 0},
		},
		"implicit": {
			Problem: "pendulum", Method: "gl4", T1: 20, H: 0.05,
			InitState: []float64{2.5, 0},
		},
	},
	"vanderpol": {
		"relaxed": {
			Problem: "vanderpol", Method: "rk4", T1: 20, H: 0.01,
		},
		"stiff": {
			Problem: "vanderpol", Method: "backward_euler", T1: 200, H: 0.05,
			Params: map[string]float64{"mu": 100},
		},
	},
	"stiff": {
		"two_rates": {
			Problem: "stiff", Method: "backward_euler", T1: 1, H: 0.01,
		},
	},
	"lorenz": {
		"butterfly": {
			Problem: "lorenz", Method: "rk4", T1: 40, H: 0.005,
		},
	},
}

// GetPreset fetches a named preset, filling unset numeric fields with
// the usual defaults.
func GetPreset(problem, preset string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	out := *cfg
	if out.H == 0 {
		out.H = DefaultH
	}
	if out.Tol == 0 {
		out.Tol = DefaultTol
	}
	if out.MaxIter == 0 {
		out.MaxIter = DefaultMaxIter
	}
	return &out
}

// ListPresets names the presets available for one problem.
func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
