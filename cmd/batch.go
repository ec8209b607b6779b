package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/manifest"
	"github.com/AnyUserName/bmpops/internal/pipeline"
	"github.com/AnyUserName/bmpops/internal/plan"
)

var (
	batchOutDir string
	batchPlan   string
	batchOps    []string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Run operations over every bitmap in a directory and write a manifest",
	Long: `Scans the input directory (recursively, skipping hidden directories) for
.bmp files and applies every operation of the selected plan to each one,
one file at a time. Outputs keep the source's relative path and gain the
operation's suffix. A manifest with the size and xxhash of every output
is written to <out>/` + manifest.FileName + `.

Plans: ` + strings.Join(plan.Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "output directory (default: <input_dir>/"+pipeline.DefaultOutDir+")")
	batchCmd.Flags().StringVarP(&batchPlan, "plan", "p", plan.DefaultName, "built-in plan")
	batchCmd.Flags().StringSliceVar(&batchOps, "ops", nil, "explicit operations, e.g. invert,quantize-3,remove-red (overrides --plan)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput := filepath.Join(absInput, pipeline.DefaultOutDir)
	if batchOutDir != "" {
		if absOutput, err = filepath.Abs(batchOutDir); err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
	}

	p, err := plan.Get(batchPlan)
	if err != nil {
		return err
	}
	if len(batchOps) > 0 {
		p = plan.Custom(batchOps)
	}
	operations, err := p.Operations()
	if err != nil {
		return err
	}

	logger.Debug("batch", "input", absInput, "output", absOutput, "plan", p.Name, "ops", len(operations))

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	m, err := pipeline.New(pipeline.Config{
		InputDir:   absInput,
		OutputDir:  absOutput,
		Plan:       p.Name,
		Operations: operations,
		Logger:     logger,
	}).Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, manifestPath, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, manifestPath string, elapsed time.Duration) {
	s := m.Stats
	fmt.Println()
	fmt.Printf("  Plan:        %s (%s)\n", m.Plan, strings.Join(m.Operations, ", "))
	fmt.Printf("  Bitmaps:     %d\n", s.TotalAssets)
	fmt.Printf("  Outputs:     %d\n", s.TotalOutputs)
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	if s.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", s.Failed)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()

	if len(m.Failures) > 0 {
		fmt.Println("  Failures:")
		for _, f := range m.Failures {
			if f.Op != "" {
				fmt.Printf("    %s [%s]: %s\n", f.Key, f.Op, f.Error)
			} else {
				fmt.Printf("    %s: %s\n", f.Key, f.Error)
			}
		}
		fmt.Println()
	}

	// Largest sources first.
	type item struct {
		key  string
		size int64
		dims string
	}
	var items []item
	for key, a := range m.Assets {
		items = append(items, item{key, a.Source.Size, fmt.Sprintf("%dx%d", a.Source.Width, a.Source.Height)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].size != items[j].size {
			return items[i].size > items[j].size
		}
		return items[i].key < items[j].key
	})
	n := min(len(items), 10)
	if n > 0 {
		fmt.Printf("  Top %d largest:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %10s  %s\n", truncKey(it.key, 40), it.dims, formatBytes(it.size))
		}
		fmt.Println()
	}

	fmt.Printf("  Manifest:    %s\n", manifestPath)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
