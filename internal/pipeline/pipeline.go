// Package pipeline applies a list of operations to every bitmap found in
// a directory and reports the results as a manifest.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/AnyUserName/bmpops/internal/manifest"
	"github.com/AnyUserName/bmpops/internal/ops"
)

// DefaultOutDir is the directory under InputDir that receives outputs when
// no OutputDir is set. The scanner never descends into it, so outputs are
// not picked up as sources by a later run.
const DefaultOutDir = "bmpops-out"

// Config holds all parameters for a batch run.
type Config struct {
	InputDir   string
	OutputDir  string
	Plan       string
	Operations []ops.Operation
	Logger     *slog.Logger
}

// Pipeline runs a batch. Files are processed one at a time, and each
// operation completes before the next starts.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(cfg.InputDir, DefaultOutDir)
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes the batch and returns the manifest. Individual failures are
// recorded in the manifest; Run fails only when nothing could be processed.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	if len(p.cfg.Operations) == 0 {
		return nil, fmt.Errorf("no operations to run")
	}

	sources, err := ScanBitmaps(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no bitmaps found in %s", p.cfg.InputDir)
	}
	p.logger.Debug("found bitmaps", "count", len(sources), "dir", p.cfg.InputDir)

	names := make([]string, len(p.cfg.Operations))
	for i, op := range p.cfg.Operations {
		names[i] = op.String()
	}
	m := manifest.New(p.cfg.Plan, names)
	m.InputDir = p.cfg.InputDir

	var failedSources int
	for _, src := range sources {
		logger := p.logger.With("file", src.RelPath)
		logger.Debug("processing")

		r := processSource(src, p.cfg, logger)
		m.Failures = append(m.Failures, r.failures...)
		if !r.ok() {
			failedSources++
			continue
		}
		m.Assets[r.key] = r.asset
		logger.Debug("done", "outputs", len(r.asset.Outputs))
	}

	if failedSources == len(sources) {
		return nil, fmt.Errorf("all %d bitmaps failed to process", len(sources))
	}
	if len(m.Failures) > 0 {
		p.logger.Warn("batch finished with errors", "failures", len(m.Failures), "sources", len(sources))
	}

	m.ComputeStats()
	return m, nil
}
