package storage

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func sampleTrace() *ode.Trace {
	return &ode.Trace{
		Times: []float64{0, 0.1, 0.2},
		States: [][]float64{
			{1, 0},
			{0.995, -0.0998},
			{0.980, -0.1986},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	tr := sampleTrace()
	runID, err := st.Save("harmonic", ode.RK4, 0, 0.2, 0.1, tr, false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Problem != "harmonic" || meta.Method != "rk4" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Steps != 2 {
		t.Errorf("steps = %d, want 2", meta.Steps)
	}

	got, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("LoadTrace: %v", err)
	}
	if got.Len() != tr.Len() {
		t.Fatalf("trace length = %d, want %d", got.Len(), tr.Len())
	}
	for i := range tr.Times {
		if got.Times[i] != tr.Times[i] {
			t.Errorf("time[%d] = %v, want %v", i, got.Times[i], tr.Times[i])
		}
		for j := range tr.States[i] {
			if math.Abs(got.States[i][j]-tr.States[i][j]) != 0 {
				t.Errorf("state[%d][%d] = %v, want %v", i, j, got.States[i][j], tr.States[i][j])
			}
		}
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("decay", ode.Euler, 0, 1, 0.1, sampleTrace(), true); err != nil {
		t.Fatal(err)
	}
	runs, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if !runs[0].Aborted {
		t.Error("aborted flag lost")
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("want error for missing run")
	}
	if _, err := st.LoadTrace("nope"); err == nil {
		t.Error("want error for missing trace")
	}
}
