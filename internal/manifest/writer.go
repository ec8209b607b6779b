package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates an empty manifest for a batch run.
func New(planName string, operations []string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Plan:        planName,
		Operations:  operations,
		BasePath:    "./",
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates aggregate statistics from assets and failures.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalAssets = len(m.Assets)
	s.Failed = len(m.Failures)
	for _, a := range m.Assets {
		s.TotalInputBytes += a.Source.Size
		s.TotalOutputs += len(a.Outputs)
		for _, o := range a.Outputs {
			s.TotalOutputBytes += o.Size
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to path. Map keys are emitted in
// sorted order by encoding/json, so output is stable.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest written by WriteJSON. Unknown fields are
// ignored.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
