package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/cli"
)

var (
	// Global flags
	cfgFile    string
	deviceHint string
	verbose    bool
)

// alertExitCode carries the severity of the alerts command so Execute can
// turn it into the process exit status after a successful run.
var alertExitCode int

var rootCmd = &cobra.Command{
	Use:   "airgauge",
	Short: "Airgauge - AirGradient air quality monitor CLI",
	Long: `Airgauge talks to AirGradient monitors on your local network.

It reads current measures over the device HTTP API and provides:
  - Threshold-based air quality alerts
  - Local reading history in SQLite
  - A collection daemon with Prometheus metrics
  - Plain-text and JSON output for scripting`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps errors to exit codes: 2 for
// configuration problems, 3 for runtime failures. A clean alerts run
// exits with the alert severity instead.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	if alertExitCode != 0 {
		os.Exit(alertExitCode)
	}
}

func exitCode(err error) int {
	var cfgErr *cli.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 3
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default config/config.yaml, or $AIRGAUGE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&deviceHint, "device", "d", "", "device name or hostname from config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
