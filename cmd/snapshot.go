package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record a budget-day snapshot",
	Long: "Derive the target day's figures and upsert them into the budget history.\n" +
		"Snapshots are only ever written by this command; nothing records them automatically.",
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(_ *cobra.Command, _ []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}

	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	day, err := tracker.SnapshotDay(date)
	if err != nil {
		return err
	}

	cur := cfg.General.Currency
	fmt.Printf("  Snapshot %s: budget %s, spent %s, carry %s\n",
		day.Date,
		cli.FormatAmount(cur, float64(day.DailyBudget)),
		cli.FormatAmount(cur, day.Spent),
		cli.FormatAmount(cur, day.CarryForward),
	)
	return nil
}
