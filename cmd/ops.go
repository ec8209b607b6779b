package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/ops"
	"github.com/AnyUserName/bmpops/internal/transform"
)

var (
	removeChannel string
	quantizeLevel int
)

var copyCmd = &cobra.Command{
	Use:   "copy <name>",
	Short: "Save an unchanged copy as <name>_copy.bmp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(cmd.OutOrStdout(), args[0], ops.CopyOp())
	},
}

var removeChannelCmd = &cobra.Command{
	Use:   "remove-channel <name> --channel red|green|blue",
	Short: "Zero one color channel and save as <name>_<channel>_channel_removed.bmp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := transform.ParseChannel(removeChannel)
		if err != nil {
			return err
		}
		return runOp(cmd.OutOrStdout(), args[0], ops.RemoveChannelOp(ch))
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert <name>",
	Short: "Invert every color and save as <name>_inverted.bmp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(cmd.OutOrStdout(), args[0], ops.InvertOp())
	},
}

var quantizeCmd = &cobra.Command{
	Use:   "quantize <name> --level 0-7",
	Short: "Clear the lowest bits of every channel and save as <name>_quantize_<level>.bmp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := transform.NewLevel(quantizeLevel)
		if err != nil {
			return err
		}
		return runOp(cmd.OutOrStdout(), args[0], ops.QuantizeOp(level))
	},
}

var flipCmd = &cobra.Command{
	Use:     "flip <name>",
	Aliases: []string{"flip-horizontal"},
	Short:   "Mirror the image left to right and save as <name>_flipped_horizontally.bmp",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(cmd.OutOrStdout(), args[0], ops.FlipHorizontalOp())
	},
}

func init() {
	removeChannelCmd.Flags().StringVarP(&removeChannel, "channel", "c", "", "channel to remove: red, green, blue (or 1, 2, 3)")
	_ = removeChannelCmd.MarkFlagRequired("channel")

	quantizeCmd.Flags().IntVarP(&quantizeLevel, "level", "l", 0, "number of low-order bits to clear (0-7)")
	_ = quantizeCmd.MarkFlagRequired("level")

	rootCmd.AddCommand(copyCmd, removeChannelCmd, invertCmd, quantizeCmd, flipCmd)
}

func runOp(w io.Writer, arg string, op ops.Operation) error {
	base := baseArg(arg)
	logger.Debug("running operation", "op", op.String(), "base", base)

	res, err := ops.Run(base, op)
	if err != nil {
		return err
	}

	logger.Debug("operation complete", "output", res.Output, "width", res.Width, "height", res.Height)
	fmt.Fprintf(w, "  ✓ %s: %s → %s (%dx%d)\n", op, res.Source, res.Output, res.Width, res.Height)
	return nil
}
