package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	tracker, db, _, err := openTracker()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println()
	fmt.Println("  Welcome to dburn!")
	fmt.Println()

	// 1. Display name
	fmt.Println("  1. Display name")
	fmt.Printf("     Current: %s\n", tracker.Profile.DisplayName())
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name != "" {
		if err := tracker.SetDisplayName(name); err != nil {
			return err
		}
	}
	fmt.Println()

	// 2. Daily budget
	fmt.Println("  2. Daily budget")
	fmt.Printf("     Whole currency units, default %d.\n", model.DefaultDailyBudget)
	fmt.Printf("     Current: %d\n", tracker.Profile.DailyBudget())
	fmt.Print("     > ")
	budget, _ := reader.ReadString('\n')
	budget = strings.TrimSpace(budget)
	if budget != "" {
		if _, convErr := strconv.Atoi(budget); convErr != nil {
			fmt.Println("     Not a whole number, keeping current value.")
		} else if err := tracker.SetDailyBudgetString(budget); err != nil {
			return err
		}
	}
	fmt.Println()

	// 3. Currency symbol
	fmt.Println("  3. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `dburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
