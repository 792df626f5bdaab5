package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	return tui.Run(tracker, cfg)
}
