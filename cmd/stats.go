package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/manifest"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a batch output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path, err := resolveManifestPath(args[0])
	if err != nil {
		return err
	}
	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}
	printStats(m)
	return nil
}

// resolveManifestPath accepts either a manifest file or the directory
// holding one.
func resolveManifestPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}
	return path, nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Plan:             %s\n", m.Plan)
	fmt.Printf("  Input dir:        %s\n", m.InputDir)
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total bitmaps:    %d\n", s.TotalAssets)
	fmt.Printf("  Total outputs:    %d\n", s.TotalOutputs)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))

	covered := 0
	for _, a := range m.Assets {
		if a.ThumbHash != "" {
			covered++
		}
	}
	fmt.Printf("  ThumbHash coverage: %d / %d bitmaps\n", covered, len(m.Assets))
	fmt.Println()

	// Per-operation breakdown, in plan order.
	opStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Assets {
		for _, o := range a.Outputs {
			st := opStats[o.Op]
			st.count++
			st.bytes += o.Size
			opStats[o.Op] = st
		}
	}
	fmt.Println("  Operation breakdown:")
	for _, op := range m.Operations {
		if st, ok := opStats[op]; ok {
			fmt.Printf("    %-14s %4d files  %s\n", op, st.count, formatBytes(st.bytes))
		}
	}
	fmt.Println()

	// Dimension breakdown.
	dimStats := map[string]int{}
	for _, a := range m.Assets {
		dimStats[fmt.Sprintf("%dx%d", a.Source.Width, a.Source.Height)]++
	}
	dims := make([]string, 0, len(dimStats))
	for d := range dimStats {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	fmt.Println("  Dimensions:")
	for _, d := range dims {
		fmt.Printf("    %11s  %4d bitmaps\n", d, dimStats[d])
	}

	// Warnings.
	var warnings []string
	for key, a := range m.Assets {
		if len(a.Outputs) < len(m.Operations) {
			warnings = append(warnings, fmt.Sprintf("bitmap %q has %d of %d outputs", key, len(a.Outputs), len(m.Operations)))
		}
		if bitmap.ExpectedFileSize(a.Source.Width, a.Source.Height) != a.Source.HeaderFileSize {
			warnings = append(warnings, fmt.Sprintf("bitmap %q header file size %d does not match its dimensions", key, a.Source.HeaderFileSize))
		}
	}
	for _, f := range m.Failures {
		warnings = append(warnings, fmt.Sprintf("bitmap %q failed: %s", f.Key, f.Error))
	}
	if len(warnings) > 0 {
		sort.Strings(warnings)
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
