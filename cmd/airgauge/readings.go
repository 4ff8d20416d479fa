package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/cli"
	"airgauge-hq/airgauge/pkg/render"
)

var readingsFlags struct {
	json bool
}

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "Show the raw sensor payload",
	Long: `Fetch the device's current measures and list every field the firmware
reports, sorted by name. With --json the payload is printed verbatim for
piping into jq or scripts.`,
	RunE: runReadings,
}

func init() {
	rootCmd.AddCommand(readingsCmd)
	readingsCmd.Flags().BoolVar(&readingsFlags.json, "json", false, "output raw JSON")
}

func runReadings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	name, reading, err := fetchReading(ctx, cfg, "readings")
	if err != nil {
		return err
	}

	if readingsFlags.json {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, reading); err != nil {
			return cli.NewCommandError("readings", err)
		}
	} else {
		fmt.Println(render.New().Readings(reading))
	}
	return maybeStore(ctx, cfg, "readings", name, reading)
}
