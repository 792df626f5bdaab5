package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses for a day",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}

	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	expenses := tracker.Ledger.ByDate(date)
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses on %s.\n", date)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s %s", date, cli.FormatDayOfWeek(date))))
	fmt.Println()

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatClock(e.Timestamp),
			cli.FormatAmount(cfg.General.Currency, e.Amount),
			e.Category,
			e.Merchant,
			e.Note,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Time", "Amount", "Category", "Merchant", "Note"},
		Rows:    rows,
	}))

	sum := tracker.SummarizeDay(date)
	fmt.Printf("\n  %d expenses, %s spent\n",
		sum.Count,
		cli.FormatAmount(cfg.General.Currency, sum.Spent),
	)

	return nil
}
