package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/bitmap"
)

var (
	version = "0.1.0"
	verbose bool
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "bmpops",
	Short: "Copy, invert, quantize, flip or strip channels from 24-bit bitmaps",
	Long: `bmpops loads an uncompressed 24-bit bitmap, applies one pixel operation
and writes the result next to the source under a descriptive name:

  <name>_copy.bmp                      copy
  <name>_<channel>_channel_removed.bmp remove-channel
  <name>_inverted.bmp                  invert
  <name>_quantize_<level>.bmp          quantize
  <name>_flipped_horizontally.bmp      flip

File names may be given with or without the .bmp extension. Run without a
subcommand for the interactive menu.`,
	Version:      version,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {
		setupLogging()
	},
	RunE: runMenu,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"bmpops %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// setupLogging installs a stderr text logger; --verbose enables debug records.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// baseArg accepts a base path with or without the .bmp extension.
func baseArg(s string) string {
	return strings.TrimSuffix(s, bitmap.Ext)
}
