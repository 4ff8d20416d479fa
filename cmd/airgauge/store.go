package main

import (
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Fetch one reading and persist it",
	Long: `Fetch the device's current measures and append them to the history
database. Suitable for cron; for continuous collection with metrics, use
the watch command instead.`,
	RunE: runStore,
}

func init() {
	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	name, reading, err := fetchReading(ctx, cfg, "store")
	if err != nil {
		return err
	}
	return storeReading(ctx, cfg, "store", name, reading)
}
