package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/gravity"
)

const (
	KindOrbit = "orbit"
	KindBeam  = "beam"

	metadataFile = "metadata.json"
	statesFile   = "states.csv"
	nodesFile    = "nodes.csv"
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
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	G         float64            `json:"g,omitempty"`
	Dt        float64            `json:"dt,omitempty"`
	Steps     int                `json:"steps"`
	Bodies    []string           `json:"bodies,omitempty"`
	Elements  []fem.Element      `json:"elements,omitempty"`
	Reaction  float64            `json:"reaction,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Trajectory is the recorded state of an orbit run, one row per frame.
type Trajectory struct {
	Names  []string
	Times  []float64
	States [][]float64
}

// Record appends the current session state.
func (tr *Trajectory) Record(sys *gravity.System) {
	if tr.Names == nil {
		tr.Names = sys.Names()
	}
	tr.Times = append(tr.Times, sys.Time)
	tr.States = append(tr.States, sys.Snapshot())
}

func (s *Store) newRun(kind string) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

func writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveOrbit writes an orbit run and returns its id.
func (s *Store) SaveOrbit(meta RunMetadata, tr *Trajectory) (string, error) {
	runID, runDir, err := s.newRun(KindOrbit)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Kind = KindOrbit
	meta.Timestamp = time.Now()
	meta.Bodies = tr.Names
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	header := []string{"time"}
	for _, name := range tr.Names {
		header = append(header, name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	rows := make([][]string, len(tr.States))
	for i, state := range tr.States {
		row := []string{formatFloat(tr.Times[i])}
		for _, v := range state {
			row = append(row, formatFloat(v))
		}
		rows[i] = row
	}

	if err := writeCSV(filepath.Join(runDir, statesFile), header, rows); err != nil {
		return "", err
	}
	return runID, nil
}

// SaveBeam writes a solved chain and returns its id.
func (s *Store) SaveBeam(meta RunMetadata, elements []fem.Element, res *fem.Result) (string, error) {
	runID, runDir, err := s.newRun(KindBeam)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Kind = KindBeam
	meta.Timestamp = time.Now()
	meta.Elements = elements
	meta.Reaction = res.Reaction
	meta.Steps = 1
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	rows := make([][]string, res.Nodes())
	for i, u := range res.Displacements {
		rows[i] = []string{strconv.Itoa(i), formatFloat(u)}
	}
	if err := writeCSV(filepath.Join(runDir, nodesFile), []string{"node", "displacement"}, rows); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads an orbit run's frames back as rows of [x, y, vx, vy]
// per body.
func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}

	var states [][]float64
	var times []float64
	for _, record := range records {
		vals, err := parseRow(record)
		if err != nil {
			return nil, nil, err
		}
		if len(vals) == 0 {
			continue
		}
		times = append(times, vals[0])
		states = append(states, vals[1:])
	}
	return states, times, nil
}

// LoadDisplacements reads a beam run's nodal displacements.
func (s *Store) LoadDisplacements(runID string) ([]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, nodesFile))
	if err != nil {
		return nil, err
	}

	disp := make([]float64, 0, len(records))
	for _, record := range records {
		vals, err := parseRow(record)
		if err != nil {
			return nil, err
		}
		if len(vals) < 2 {
			continue
		}
		disp = append(disp, vals[1])
	}
	return disp, nil
}

// readCSV returns all records after the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func parseRow(record []string) ([]float64, error) {
	vals := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad value %q: %w", field, err)
		}
		vals[i] = v
	}
	return vals, nil
}
