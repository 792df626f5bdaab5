package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/state"
	"github.com/theirongolddev/dburn/internal/store"
)

var (
	flagDB   string
	flagDate string
)

var rootCmd = &cobra.Command{
	Use:   "dburn",
	Short: "Daily budget burn tracker",
	Long:  "Track daily expenses against a budget: record spends, watch what's left, keep per-day snapshots.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Target day as YYYY-MM-DD (default today)")
}

// dbPath resolves the database location: flag, then config override,
// then the XDG default.
func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "dburn.db")
	}
	return store.DefaultPath()
}

// openTracker is the shared load path used by all commands. The caller
// must close the returned store.
func openTracker() (*state.Tracker, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, err
	}

	db, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, nil, cfg, err
	}

	tracker, err := state.Open(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, cfg, err
	}

	return tracker, db, cfg, nil
}

// targetDate returns the --date flag or today, rejecting malformed input.
func targetDate() (string, error) {
	if flagDate == "" {
		return model.Day(time.Now()), nil
	}
	if _, err := time.Parse(model.DateFormat, flagDate); err != nil {
		return "", fmt.Errorf("invalid --date %q, want YYYY-MM-DD", flagDate)
	}
	return flagDate, nil
}
