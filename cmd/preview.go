package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/bitmap"
	"github.com/AnyUserName/bmpops/internal/preview"
)

var previewCols int

var previewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Render <name>.bmp in a true-color terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		img, err := bitmap.Load(baseArg(args[0]))
		if err != nil {
			return err
		}
		logger.Debug("rendering", "width", img.Grid.Width, "height", img.Grid.Height, "cols", previewCols)
		return preview.Render(os.Stdout, img.Grid, previewCols)
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewCols, "cols", 64, "maximum pixels per line (0 = no downsampling)")
	rootCmd.AddCommand(previewCmd)
}
