package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the day's budget status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}

	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	cur := cfg.General.Currency
	sum := tracker.SummarizeDay(date)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HI %s  %s %s",
		tracker.Profile.DisplayName(), date, cli.FormatDayOfWeek(date))))
	fmt.Println()

	fmt.Println(cli.RenderKV("Daily budget", cli.FormatAmount(cur, float64(sum.DailyBudget))))
	fmt.Println(cli.RenderKV("Spent", cli.FormatAmount(cur, sum.Spent)))
	fmt.Println(cli.RenderKV("Available", cli.FormatSignedAmount(cur, sum.Available)))
	fmt.Println(cli.RenderKV("Carry forward", cli.FormatAmount(cur, sum.CarryForward)))
	fmt.Println(cli.RenderKV("Tier", cli.TierStyle(sum.Tier).Render(cli.FormatTier(sum.Tier))))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderBudgetBar(sum.PercentSpent, sum.Tier, 40))

	cats := tracker.CategoriesForDay(date)
	if len(cats) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []string{
				c.Category,
				fmt.Sprintf("%d", c.Count),
				cli.FormatAmount(cur, c.Spent),
				cli.FormatPercent(c.SharePercent),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By category",
			Headers: []string{"Category", "Count", "Spent", "Share"},
			Rows:    rows,
		}))
	}

	return nil
}
