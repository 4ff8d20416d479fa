package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"airgauge-hq/airgauge/pkg/cli"
	"airgauge-hq/airgauge/pkg/config"
	"airgauge-hq/airgauge/pkg/device"
	"airgauge-hq/airgauge/pkg/render"
	"airgauge-hq/airgauge/pkg/storage"
	"airgauge-hq/airgauge/pkg/telemetry/logging"
)

// loadConfig loads the resolved config file and installs the logger.
// --verbose forces debug level regardless of the configured one.
func loadConfig() (*config.Config, error) {
	path := config.ResolvePath(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if _, err := logging.Setup(cfg.Logging, os.Stderr); err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}
	return cfg, nil
}

// resolveDevice applies the --device hint against the configuration.
func resolveDevice(cfg *config.Config) (config.Device, error) {
	d, err := device.Resolve(cfg, deviceHint)
	if err != nil {
		return config.Device{}, cli.NewConfigError("devices", err.Error())
	}
	return d, nil
}

func networkTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Network.TimeoutSec * float64(time.Second))
}

// fetchReading resolves the target device and fetches its current
// measures. Fetch failures classify as runtime errors for the named
// command.
func fetchReading(ctx context.Context, cfg *config.Config, command string) (string, device.Reading, error) {
	d, err := resolveDevice(cfg)
	if err != nil {
		return "", nil, err
	}
	endpoint, err := device.Endpoint(d)
	if err != nil {
		return "", nil, cli.NewConfigError("devices", err.Error())
	}

	client := device.NewClient(networkTimeout(cfg))
	reading, err := client.Fetch(ctx, endpoint)
	if err != nil {
		return "", nil, cli.NewCommandError(command, err)
	}
	return device.DisplayName(d), reading, nil
}

// storeReading appends one reading to the history database, echoing a
// confirmation when the config asks for one.
func storeReading(ctx context.Context, cfg *config.Config, command, name string, reading device.Reading) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return cli.NewCommandError(command, err)
	}
	defer store.Close()

	if err := store.SaveReading(ctx, name, reading); err != nil {
		return cli.NewCommandError(command, err)
	}
	if cfg.Storage.EchoSummary {
		fmt.Println(render.New().Successf("Stored reading for %s", name))
	}
	return nil
}

// maybeStore persists the reading when store_on_read is enabled. Read
// commands call this after displaying their output.
func maybeStore(ctx context.Context, cfg *config.Config, command, name string, reading device.Reading) error {
	if !cfg.Storage.StoreOnRead {
		return nil
	}
	return storeReading(ctx, cfg, command, name, reading)
}
