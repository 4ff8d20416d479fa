package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/cli"
	"airgauge-hq/airgauge/pkg/poller"
	"airgauge-hq/airgauge/pkg/storage"
	"airgauge-hq/airgauge/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the collection daemon",
	Long: `Poll every configured device on the watch schedule, persist readings,
and serve Prometheus metrics.

The configuration file is watched for changes: device, threshold, and
network edits take effect without a restart. Stop with SIGINT or SIGTERM.

Examples:
  # Run with the configured schedule (default @every 5m)
  airgauge watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer store.Close()

	collector := metrics.NewCollector("airgauge")
	p := poller.New(cfg, store, collector, slog.Default())

	ctx := cli.SetupSignalHandler()
	if err := p.Run(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
