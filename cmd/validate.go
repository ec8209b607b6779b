package cmd

import (
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/hasher"
	"github.com/AnyUserName/bmpops/internal/manifest"
	"github.com/AnyUserName/bmpops/internal/ops"
)

var validateCmd = &cobra.Command{
	Use:   "validate <out_dir_or_manifest>",
	Short: "Validate a batch manifest and check every output against its hash",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath, err := resolveManifestPath(args[0])
	if err != nil {
		return err
	}
	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(m.BasePath))
	errors := validateManifest(m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d bitmaps, %d outputs, all files present and unchanged\n", m.Stats.TotalAssets, m.Stats.TotalOutputs)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	for key, asset := range m.Assets {
		if asset.Source.Width <= 0 || asset.Source.Height <= 0 {
			errs = append(errs, fmt.Sprintf("bitmap %q: invalid dimensions %dx%d",
				key, asset.Source.Width, asset.Source.Height))
		}
		if asset.ThumbHash == "" {
			errs = append(errs, fmt.Sprintf("bitmap %q: missing thumbhash", key))
		} else if _, err := base64.StdEncoding.DecodeString(asset.ThumbHash); err != nil {
			errs = append(errs, fmt.Sprintf("bitmap %q: invalid thumbhash: %v", key, err))
		}
		if len(asset.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("bitmap %q: no outputs", key))
		}

		seenPaths := map[string]bool{}
		for i, o := range asset.Outputs {
			if _, err := ops.Parse(o.Op); err != nil {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: %v", key, i, err))
			}
			if o.Hash == "" {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: missing hash", key, i))
			}
			if o.Path == "" {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: missing path", key, i))
				continue
			}

			if seenPaths[o.Path] {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: duplicate path %q", key, i, o.Path))
			}
			seenPaths[o.Path] = true

			sum, size, err := hasher.File(filepath.Join(baseDir, filepath.FromSlash(o.Path)))
			if err != nil {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: file not readable: %s", key, i, o.Path))
				continue
			}
			if o.Size > 0 && size != o.Size {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: size mismatch: manifest=%d, disk=%d",
					key, i, o.Size, size))
			}
			if o.Hash != "" && sum != o.Hash {
				errs = append(errs, fmt.Sprintf("bitmap %q output[%d]: hash mismatch: manifest=%s, disk=%s",
					key, i, o.Hash, sum))
			}
		}
	}

	outputCount := 0
	for _, a := range m.Assets {
		outputCount += len(a.Outputs)
	}
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalOutputs != outputCount {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, outputCount))
	}

	return errs
}
