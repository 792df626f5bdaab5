package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := resolveExpense(tracker, args[0])
	if err != nil {
		return err
	}

	if err := tracker.DeleteExpense(e.ID); err != nil {
		return err
	}

	fmt.Printf("  Deleted %s  %s  [%s]\n",
		cli.FormatAmount(cfg.General.Currency, e.Amount),
		e.Category,
		cli.ShortID(e.ID),
	)
	return nil
}
