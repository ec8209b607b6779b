package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("basic", []string{"copy", "invert"})
	m.InputDir = "/data/in"
	m.Assets["sub/photo"] = Asset{
		Source: SourceInfo{
			Path: "sub/photo.bmp", Width: 4, Height: 2,
			HeaderFileSize: 78, Size: 78,
		},
		ThumbHash: "IAgCIAgCAAAAAAAAAAA=",
		Outputs: []Output{
			{Op: "copy", Path: "sub/photo_copy.bmp", Size: 78, Hash: "0123456789abcdef"},
			{Op: "invert", Path: "sub/photo_inverted.bmp", Size: 78, Hash: "fedcba9876543210"},
		},
	}
	m.Failures = []Failure{{Key: "broken", Error: "bitmap: truncated input"}}

	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Plan != "basic" {
		t.Errorf("plan: got %q", m2.Plan)
	}
	if len(m2.Operations) != 2 {
		t.Errorf("operations: got %v", m2.Operations)
	}

	a, ok := m2.Assets["sub/photo"]
	if !ok {
		t.Fatal("asset sub/photo missing")
	}
	if a.ThumbHash != "IAgCIAgCAAAAAAAAAAA=" {
		t.Errorf("thumbhash: got %q", a.ThumbHash)
	}
	if a.Source.HeaderFileSize != 78 {
		t.Errorf("header file size: got %d", a.Source.HeaderFileSize)
	}
	if len(a.Outputs) != 2 || a.Outputs[1].Hash != "fedcba9876543210" {
		t.Errorf("outputs: got %+v", a.Outputs)
	}

	s := m2.Stats
	if s.TotalAssets != 1 || s.TotalOutputs != 2 || s.Failed != 1 {
		t.Errorf("stats: got %+v", s)
	}
	if s.TotalInputBytes != 78 || s.TotalOutputBytes != 156 {
		t.Errorf("byte stats: got %+v", s)
	}
}

func TestManifestVersion(t *testing.T) {
	m := New("v-test", nil)
	if m.Version != SupportedManifestVersion {
		t.Errorf("new manifest version: got %d, want %d", m.Version, SupportedManifestVersion)
	}
}

func TestReadJSON_IgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"plan": "custom",
		"future_field": "should be ignored",
		"assets": {},
		"stats": { "total_assets": 0, "total_outputs": 0, "new_stat": 42 }
	}`
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read with unknown fields: %v", err)
	}
	if m.Plan != "custom" {
		t.Errorf("plan: got %q", m.Plan)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadJSON(bad); err == nil {
		t.Error("malformed manifest accepted")
	}
}
