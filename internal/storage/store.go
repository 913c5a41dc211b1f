// Package storage persists integration runs: one directory per run
// with a metadata.json and the trace as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/odelab/internal/ode"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	T0        float64   `json:"t0"`
	T1        float64   `json:"t1"`
	H         float64   `json:"h"`
	Steps     int       `json:"steps"`
	Aborted   bool      `json:"aborted,omitempty"`
}

// Save writes one run. An aborted run is still saved: the partial
// trace is often the interesting part.
func (s *Store) Save(problem string, m ode.Method, t0, t1, h float64, tr *ode.Trace, aborted bool) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", problem, m, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Problem:   problem,
		Method:    m.String(),
		Timestamp: time.Now(),
		T0:        t0,
		T1:        t1,
		H:         h,
		Steps:     tr.Len() - 1,
		Aborted:   aborted,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if tr.Len() == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range tr.States[0] {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range tr.States {
		row := []string{strconv.FormatFloat(tr.Times[i], 'g', 17, 64)}
		for _, val := range tr.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads a saved trace back.
func (s *Store) LoadTrace(runID string) (*ode.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return &ode.Trace{}, nil
	}

	tr := &ode.Trace{}
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad trace value %q in %s", field, runID)
			}
			state = append(state, v)
		}
		tr.Times = append(tr.Times, t)
		tr.States = append(tr.States, state)
	}
	return tr, nil
}
