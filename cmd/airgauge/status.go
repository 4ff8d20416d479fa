package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/render"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current air quality for a device",
	Long: `Fetch the device's current measures and render a status block with
air quality, climate, and device sections. Values are judged against the
configured thresholds.

Examples:
  # Default device
  airgauge status

  # A specific device by name or hostname
  airgauge status --device bedroom`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	name, reading, err := fetchReading(ctx, cfg, "status")
	if err != nil {
		return err
	}

	fmt.Println(render.New().Status(name, reading, cfg.Thresholds))
	return maybeStore(ctx, cfg, "status", name, reading)
}
