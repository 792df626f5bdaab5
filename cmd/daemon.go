package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/daemon"
)

var (
	flagDaemonAddr     string
	flagDaemonInterval int
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the budget watch service",
	Long: "Poll the store and serve today's budget state over local HTTP:\n" +
		"/healthz, /v1/status, /v1/events, /v1/stream (SSE), /metrics (Prometheus).",
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&flagDaemonAddr, "addr", "", "Listen address (default from config)")
	daemonCmd.Flags().IntVar(&flagDaemonInterval, "interval", 0, "Poll interval in seconds (default from config)")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	addr := cfg.Daemon.Addr
	if flagDaemonAddr != "" {
		addr = flagDaemonAddr
	}
	intervalSec := cfg.Daemon.PollIntervalSec
	if flagDaemonInterval > 0 {
		intervalSec = flagDaemonInterval
	}

	svc := daemon.New(daemon.Config{
		DBPath:   dbPath(cfg),
		Interval: time.Duration(intervalSec) * time.Second,
		Addr:     addr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  dburn daemon listening on %s (poll every %ds)\n", addr, intervalSec)
	return svc.Run(ctx)
}
