package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/ledger"
	"github.com/theirongolddev/dburn/internal/model"
)

var (
	flagAddCategory string
	flagAddNote     string
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [merchant]",
	Short: "Record an expense",
	Long: "Record an expense against the target day.\n" +
		"Built-in categories: " + strings.Join(model.Categories, ", ") + " (custom labels allowed).",
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Expense category (required)")
	addCmd.Flags().StringVarP(&flagAddNote, "note", "n", "", "Optional note")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	// Amount positivity is enforced here, at the entry point, not by
	// the ledger itself.
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive number, got %q", args[0])
	}

	merchant := ""
	if len(args) > 1 {
		merchant = args[1]
	}

	date, err := targetDate()
	if err != nil {
		return err
	}

	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := tracker.AddExpense(ledger.Draft{
		Amount:   amount,
		Merchant: merchant,
		Category: flagAddCategory,
		Note:     flagAddNote,
		Date:     date,
	})
	if err != nil {
		return err
	}

	sum := tracker.SummarizeDay(date)
	fmt.Printf("  Added %s  %s  %s  [%s]\n",
		cli.FormatAmount(cfg.General.Currency, e.Amount),
		e.Category,
		e.Merchant,
		cli.ShortID(e.ID),
	)
	fmt.Printf("  %s left of %s today\n",
		cli.FormatSignedAmount(cfg.General.Currency, sum.Available),
		cli.FormatAmount(cfg.General.Currency, float64(sum.DailyBudget)),
	)

	return nil
}
