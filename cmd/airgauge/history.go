package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/cli"
	"airgauge-hq/airgauge/pkg/device"
	"airgauge-hq/airgauge/pkg/render"
	"airgauge-hq/airgauge/pkg/storage"
)

var historyFlags struct {
	days int
	json bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored readings for a device",
	Long: `List readings persisted by the store command or the watch daemon,
newest first. Compensated sensor values are preferred over raw ones.

Examples:
  # Last 7 days (default)
  airgauge history

  # Last 30 days as JSON
  airgauge history --days 30 --json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyFlags.days, "days", 7, "how many days back to show")
	historyCmd.Flags().BoolVar(&historyFlags.json, "json", false, "output JSON")
}

// historyEntry is the JSON shape of one stored reading.
type historyEntry struct {
	Timestamp   string   `json:"ts"`
	PM25        *float64 `json:"pm25"`
	CO2         *float64 `json:"co2"`
	Temperature *float64 `json:"temp_c"`
	Humidity    *float64 `json:"humidity"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if historyFlags.days < 1 {
		return cli.NewConfigError("days", "must be at least 1")
	}

	d, err := resolveDevice(cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	since := time.Now().AddDate(0, 0, -historyFlags.days)
	rows, err := store.History(cmd.Context(), device.DisplayName(d), since)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if historyFlags.json {
		entries := make([]historyEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, historyEntry{
				Timestamp:   row.Timestamp.Format(time.RFC3339),
				PM25:        row.PM25,
				CO2:         row.CO2,
				Temperature: row.Temperature,
				Humidity:    row.Humidity,
			})
		}
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, entries); err != nil {
			return cli.NewCommandError("history", err)
		}
		return nil
	}

	fmt.Println(render.New().History(rows, historyFlags.days))
	return nil
}
