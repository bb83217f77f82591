// ABOUTME: Interactive terminal UI command
// ABOUTME: Launches the full-screen booking application

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barberslot/barberslot-cli/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long:  `Open the full-screen BarberSlot application: booking wizard, live queue, gallery, and the admin dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	st, api := newStore()
	return tui.Run(st, api)
}
