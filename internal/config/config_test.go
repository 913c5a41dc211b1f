package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = "pendulum"
	cfg.Method = "gl4"
	cfg.H = 0.02
	cfg.InitState = []float64{1.5, 0}
	cfg.Params = map[string]float64{"damping": 0.3}

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Problem != cfg.Problem || got.Method != cfg.Method || got.H != cfg.H {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
	if len(got.InitState) != 2 || got.InitState[0] != 1.5 {
		t.Errorf("init state = %v", got.InitState)
	}
	if got.Params["damping"] != 0.3 {
		t.Errorf("params = %v", got.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestBuild(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = "decay"
	cfg.Method = "backward_euler"
	cfg.Params = map[string]float64{"lambda": 3}

	p, m, opt, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m != ode.BackwardEuler {
		t.Errorf("method = %v", m)
	}
	if p.System.Dim() != 1 || len(p.Y0) != 1 {
		t.Errorf("problem = %+v", p)
	}
	if opt.Newton.Tol != DefaultTol {
		t.Errorf("tol = %v", opt.Newton.Tol)
	}
}

func TestBuildRejectsUnknowns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = "warp_drive"
	if _, _, _, err := cfg.Build(); err == nil {
		t.Error("unknown problem accepted")
	}

	cfg = DefaultConfig()
	cfg.Method = "dopri853"
	if _, _, _, err := cfg.Build(); err == nil {
		t.Error("unknown method accepted")
	}

	cfg = DefaultConfig()
	cfg.Params = map[string]float64{"flux": 1}
	if _, _, _, err := cfg.Build(); err == nil {
		t.Error("unknown param accepted")
	}
}

func TestPresets(t *testing.T) {
	for problem, group := range Presets {
		for name := range group {
			cfg := GetPreset(problem, name)
			if cfg == nil {
				t.Fatalf("GetPreset(%q, %q) = nil", problem, name)
			}
			if _, _, _, err := cfg.Build(); err != nil {
				t.Errorf("preset %s/%s does not build: %v", problem, name, err)
			}
		}
	}
	if GetPreset("decay", "nope") != nil {
		t.Error("bogus preset returned")
	}
	if ListPresets("decay") == nil {
		t.Error("ListPresets(decay) empty")
	}
}
