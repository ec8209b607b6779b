package pipeline

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/hasher"
	"github.com/AnyUserName/bmpops/internal/manifest"
	"github.com/AnyUserName/bmpops/internal/ops"
	"github.com/AnyUserName/bmpops/internal/thumbhash"
)

// processResult holds the outcome of running every operation on one source.
type processResult struct {
	key      string
	asset    manifest.Asset
	failures []manifest.Failure
}

func (r processResult) ok() bool { return len(r.asset.Outputs) > 0 }

// processSource decodes src once for its metadata and placeholder, then
// runs each operation in turn. Every operation decodes the source afresh,
// so no grid outlives the operation that created it.
func processSource(src Source, cfg Config, logger *slog.Logger) processResult {
	result := processResult{
		key: src.Key,
		asset: manifest.Asset{
			Source: manifest.SourceInfo{Path: src.RelPath, Size: src.Size},
		},
	}

	if err := describeSource(src, &result.asset); err != nil {
		logger.Error("could not read bitmap", "error", err)
		result.failures = append(result.failures, manifest.Failure{Key: src.Key, Error: err.Error()})
		return result
	}

	dstBase := filepath.Join(cfg.OutputDir, filepath.FromSlash(src.Key))
	if err := os.MkdirAll(filepath.Dir(dstBase), 0o755); err != nil {
		result.failures = append(result.failures, manifest.Failure{
			Key: src.Key, Error: fmt.Sprintf("create output dir: %v", err),
		})
		return result
	}

	for _, op := range cfg.Operations {
		log := logger.With("op", op.String())

		res, err := ops.Transfer(src.Base, dstBase, op)
		if err != nil {
			if isSourceError(err) {
				// Every remaining operation would fail the same way.
				log.Error("could not read bitmap", "error", err)
				result.failures = append(result.failures, manifest.Failure{Key: src.Key, Error: err.Error()})
				return result
			}
			log.Error("operation failed", "error", err)
			result.failures = append(result.failures, manifest.Failure{
				Key: src.Key, Op: op.String(), Error: err.Error(),
			})
			continue
		}

		sum, size, err := hasher.File(res.Output)
		if err != nil {
			log.Error("could not hash output", "file", res.Output, "error", err)
			result.failures = append(result.failures, manifest.Failure{
				Key: src.Key, Op: op.String(), Error: err.Error(),
			})
			continue
		}

		rel, err := filepath.Rel(cfg.OutputDir, res.Output)
		if err != nil {
			rel = res.Output
		}
		result.asset.Outputs = append(result.asset.Outputs, manifest.Output{
			Op:   op.String(),
			Path: filepath.ToSlash(rel),
			Size: size,
			Hash: sum,
		})
		log.Debug("wrote", "file", res.Output, "hash", sum)
	}

	return result
}

// describeSource fills the dimensions, header size and placeholder of asset.
func describeSource(src Source, asset *manifest.Asset) error {
	img, err := bitmap.Load(src.Base)
	if err != nil {
		return err
	}
	asset.Source.Width = img.Grid.Width
	asset.Source.Height = img.Grid.Height
	asset.Source.HeaderFileSize = img.Meta.FileSize
	asset.ThumbHash = base64.StdEncoding.EncodeToString(thumbhash.Encode(img.Grid))
	return nil
}

func isSourceError(err error) bool {
	return errors.Is(err, bitmap.ErrNotFound) ||
		errors.Is(err, bitmap.ErrOpen) ||
		errors.Is(err, bitmap.ErrTruncated) ||
		errors.Is(err, bitmap.ErrDimensions)
}
