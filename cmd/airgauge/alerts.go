package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/render"
	"airgauge-hq/airgauge/pkg/thresholds"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Check current readings against thresholds",
	Long: `Fetch the device's current measures, evaluate the configured
thresholds, and list any violations.

The exit status reflects the worst severity: 0 when everything is within
bounds, 1 for warnings, 2 for critical violations. This makes the command
usable directly from cron or shell conditionals.`,
	RunE: runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	name, reading, err := fetchReading(ctx, cfg, "alerts")
	if err != nil {
		return err
	}

	alerts := thresholds.Evaluate(reading.Metrics(), cfg.Thresholds)
	fmt.Println(render.New().Alerts(alerts))
	alertExitCode = int(thresholds.MaxSeverity(alerts))

	return maybeStore(ctx, cfg, "alerts", name, reading)
}
