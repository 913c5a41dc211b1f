package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

const (
	DefaultH       = 0.01
	DefaultT1      = 10.0
	DefaultTol     = 1e-10
	DefaultMaxIter = 50
)

// Config describes one integration run. An empty InitState falls back
// to the system's default starting point.
type Config struct {
	Problem   string             `yaml:"problem"`
	Method    string             `yaml:"method"`
	T0        float64            `yaml:"t0"`
	T1        float64            `yaml:"t1"`
	H         float64            `yaml:"h"`
	InitState []float64          `yaml:"init_state"`
	Tol       float64            `yaml:"tol"`
	MaxIter   int                `yaml:"max_iter"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "decay",
		Method:  "rk4",
		T0:      0,
		T1:      DefaultT1,
		H:       DefaultH,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build materializes the config into a runnable problem, a method tag
// and solver options.
func (c *Config) Build() (ode.Problem, ode.Method, ode.Options, error) {
	sys, err := problems.New(c.Problem)
	if err != nil {
		return ode.Problem{}, 0, ode.Options{}, err
	}
	for name, v := range c.Params {
		if err := sys.SetParam(name, v); err != nil {
			return ode.Problem{}, 0, ode.Options{}, fmt.Errorf("config: %s: %w", c.Problem, err)
		}
	}

	m, err := ode.ParseMethod(c.Method)
	if err != nil {
		return ode.Problem{}, 0, ode.Options{}, err
	}

	y0 := c.InitState
	if len(y0) == 0 {
		y0 = sys.DefaultState()
	}

	p := ode.Problem{System: sys, T0: c.T0, T1: c.T1, H: c.H, Y0: y0}

	opt := ode.DefaultOptions()
	if c.Tol > 0 {
		opt.Newton.Tol = c.Tol
	}
	if c.MaxIter > 0 {
		opt.Newton.MaxIter = c.MaxIter
	}
	return p, m, opt, nil
}
