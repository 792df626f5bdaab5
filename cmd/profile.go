package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/cli"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the user profile",
	RunE:  runProfileShow,
}

var profileNameCmd = &cobra.Command{
	Use:   "name <display-name>",
	Short: "Set the display name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProfileName,
}

var profileBudgetCmd = &cobra.Command{
	Use:   "budget <amount>",
	Short: "Set the daily budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileBudget,
}

func init() {
	profileCmd.AddCommand(profileNameCmd)
	profileCmd.AddCommand(profileBudgetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println()
	fmt.Println(cli.RenderKV("Display name", tracker.Profile.DisplayName()))
	fmt.Println(cli.RenderKV("Daily budget",
		cli.FormatAmount(cfg.General.Currency, float64(tracker.Profile.DailyBudget()))))
	return nil
}

func runProfileName(_ *cobra.Command, args []string) error {
	tracker, db, _, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	name := strings.Join(args, " ")
	if err := tracker.SetDisplayName(name); err != nil {
		return err
	}
	fmt.Printf("  Display name set to %q\n", name)
	return nil
}

func runProfileBudget(_ *cobra.Command, args []string) error {
	tracker, db, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	before := tracker.Profile.DailyBudget()
	if err := tracker.SetDailyBudgetString(args[0]); err != nil {
		return err
	}

	after := tracker.Profile.DailyBudget()
	if after == before && args[0] != fmt.Sprint(before) {
		// Invalid input keeps the prior value; say so rather than fail.
		fmt.Printf("  %q is not a whole amount, keeping %s\n",
			args[0], cli.FormatAmount(cfg.General.Currency, float64(before)))
		return nil
	}

	fmt.Printf("  Daily budget set to %s\n",
		cli.FormatAmount(cfg.General.Currency, float64(after)))
	return nil
}
