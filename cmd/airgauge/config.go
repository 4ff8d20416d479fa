package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"airgauge-hq/airgauge/pkg/cli"
	"airgauge-hq/airgauge/pkg/config"
	"airgauge-hq/airgauge/pkg/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value by dotted key",
	Long: `Update one scalar value in the configuration file, addressed by its
dotted key path. Comments and formatting elsewhere in the file are
preserved.

Examples:
  airgauge config set thresholds.co2.warn 900
  airgauge config set storage.store_on_read true
  airgauge config set default_device bedroom`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := config.ResolvePath(cfgFile)

	// Loading validates the file before displaying it.
	if _, err := config.Load(path); err != nil {
		return cli.NewConfigError("", err.Error())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	fmt.Println(render.New().Bold("# " + path))
	fmt.Print(string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := config.ResolvePath(cfgFile)
	key, value := args[0], args[1]

	if err := config.SetValue(path, key, value); err != nil {
		return cli.NewConfigError(key, err.Error())
	}

	// Reject edits that leave the file unloadable.
	if _, err := config.Load(path); err != nil {
		return cli.NewConfigError(key, fmt.Sprintf("file no longer loads after edit: %v", err))
	}

	fmt.Println(render.New().Successf("Set %s = %s", key, value))
	return nil
}
