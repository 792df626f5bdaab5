package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/pipeline"
)

var (
	flagHistMonth string
	flagHistYear  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show budget-day snapshots",
	Long:  "Show recorded budget-day snapshots for a month (default: current) or a whole year.",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all budget-day snapshots",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistMonth, "month", "", "Month as YYYY-MM")
	historyCmd.Flags().IntVar(&flagHistYear, "year", 0, "Whole year as YYYY")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		days  []model.BudgetDay
		title string
	)

	switch {
	case flagHistYear != 0:
		days = tracker.History.ForYear(flagHistYear)
		title = fmt.Sprintf("BUDGET HISTORY  %d", flagHistYear)
	case flagHistMonth != "":
		t, err := time.Parse("2006-01", flagHistMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q, want YYYY-MM", flagHistMonth)
		}
		days = tracker.History.ForMonth(t.Year(), int(t.Month()))
		title = fmt.Sprintf("BUDGET HISTORY  %s", flagHistMonth)
	default:
		now := time.Now()
		days = tracker.History.ForMonth(now.Year(), int(now.Month()))
		title = fmt.Sprintf("BUDGET HISTORY  %s", now.Format("2006-01"))
	}

	if len(days) == 0 {
		fmt.Println("\n  No snapshots for the selected period.")
		fmt.Println("  Use `dburn snapshot` to record one.")
		return nil
	}

	days = pipeline.SortByDate(days)
	cur := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		tier := pipeline.SpendTier(d.Spent, d.DailyBudget)
		rows = append(rows, []string{
			d.Date,
			cli.FormatDayOfWeek(d.Date),
			cli.FormatAmount(cur, float64(d.DailyBudget)),
			cli.FormatAmount(cur, d.Spent),
			cli.FormatAmount(cur, d.CarryForward),
			cli.FormatTier(tier),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Budget", "Spent", "Carry", "Tier"},
		Rows:    rows,
	}))

	stats := pipeline.AggregateRange(days)
	fmt.Println()
	fmt.Println(cli.RenderKV("Days tracked", fmt.Sprintf("%d", stats.Days)))
	fmt.Println(cli.RenderKV("Total spent", cli.FormatAmount(cur, stats.TotalSpent)))
	fmt.Println(cli.RenderKV("Avg per day", cli.FormatAmount(cur, stats.AvgSpent)))
	fmt.Println(cli.RenderKV("Over budget", fmt.Sprintf("%d days", stats.OverDays)))

	// Spend sparkline, oldest to newest
	values := make([]float64, len(days))
	for i, d := range days {
		values[len(days)-1-i] = d.Spent
	}
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(values))

	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	tracker, db, _, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	n := len(tracker.History.All())
	if err := tracker.ClearHistory(); err != nil {
		return err
	}
	fmt.Printf("  Cleared %d snapshots.\n", n)
	return nil
}
