package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnyUserName/bmpops/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu (the default when no subcommand is given)",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), nil).Loop()
}
