package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Times         []float64   `json:"times,omitempty"`
	States        [][]float64 `json:"states,omitempty"`
	Displacements []float64   `json:"displacements,omitempty"`
}

// ExportJSON writes a run and its data as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	data := ExportData{RunMetadata: *meta}
	switch meta.Kind {
	case KindOrbit:
		data.States, data.Times, err = s.LoadStates(runID)
	case KindBeam:
		data.Displacements, err = s.LoadDisplacements(runID)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
