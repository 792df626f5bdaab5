package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/state"
)

var (
	flagEditAmount   float64
	flagEditMerchant string
	flagEditCategory string
	flagEditNote     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Long:  "Edit an expense's amount, merchant, category, or note. The id, creation time, and date never change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().Float64VarP(&flagEditAmount, "amount", "a", 0, "New amount")
	editCmd.Flags().StringVarP(&flagEditMerchant, "merchant", "m", "", "New merchant")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&flagEditNote, "note", "n", "", "New note")
	rootCmd.AddCommand(editCmd)
}

// resolveExpense finds a record by full id or unique short-id prefix.
func resolveExpense(tracker *state.Tracker, id string) (model.Expense, error) {
	if e, ok := tracker.Ledger.Get(id); ok {
		return e, nil
	}

	var matches []model.Expense
	for _, e := range tracker.Ledger.All() {
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Expense{}, fmt.Errorf("no expense with id %q", id)
	default:
		return model.Expense{}, fmt.Errorf("id %q is ambiguous (%d matches)", id, len(matches))
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := resolveExpense(tracker, args[0])
	if err != nil {
		return err
	}

	// Unset flags keep the record's current values.
	patch := model.ExpensePatch{
		Amount:   e.Amount,
		Merchant: e.Merchant,
		Category: e.Category,
		Note:     e.Note,
	}
	if cmd.Flags().Changed("amount") {
		if flagEditAmount <= 0 {
			return fmt.Errorf("amount must be positive, got %v", flagEditAmount)
		}
		patch.Amount = flagEditAmount
	}
	if cmd.Flags().Changed("merchant") {
		patch.Merchant = flagEditMerchant
	}
	if cmd.Flags().Changed("category") {
		patch.Category = flagEditCategory
	}
	if cmd.Flags().Changed("note") {
		patch.Note = flagEditNote
	}

	if err := tracker.UpdateExpense(e.ID, patch); err != nil {
		return err
	}

	fmt.Printf("  Updated %s  %s  %s  [%s]\n",
		cli.FormatAmount(cfg.General.Currency, patch.Amount),
		patch.Category,
		patch.Merchant,
		cli.ShortID(e.ID),
	)
	return nil
}
