package config

import (
	"fmt"
	"os"
	"path/filepath"

	"airgauge-hq/airgauge/pkg/miniyaml/ast"
	"airgauge-hq/airgauge/pkg/thresholds"
)

// EnvConfigPath is the environment variable that overrides the default
// config file location when no --config flag is given.
const EnvConfigPath = "AIRGAUGE_CONFIG"

// DefaultPath is the config location used when neither the flag nor the
// environment variable is set.
var DefaultPath = filepath.Join("config", "config.yaml")

// Device is one configured AirGradient monitor.
type Device struct {
	Name     string
	Hostname string
}

// NetworkConfig controls how readings are fetched.
type NetworkConfig struct {
	// TimeoutSec is the per-request timeout in seconds.
	TimeoutSec float64
}

// StorageConfig controls the readings database.
type StorageConfig struct {
	DBPath      string
	StoreOnRead bool
	EchoSummary bool
}

// WatchConfig controls the collector daemon.
type WatchConfig struct {
	// Schedule is a cron expression or @every duration.
	Schedule string
	// MetricsListen is the address the Prometheus endpoint binds to.
	MetricsListen string
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Config is the typed view over a parsed configuration document.
type Config struct {
	// Path is the file the configuration was loaded from.
	Path string

	Devices       []Device
	DefaultDevice string
	Network       NetworkConfig
	Storage       StorageConfig
	Thresholds    thresholds.Set
	Watch         WatchConfig
	Logging       LoggingConfig
}

// FromTree builds a typed Config from a finalized miniyaml tree. Unknown
// keys are ignored; missing sections fall back to defaults.
func FromTree(tree *ast.Value) (*Config, error) {
	if tree == nil || tree.Kind != ast.KindMapping {
		return nil, fmt.Errorf("configuration root must be a mapping")
	}

	cfg := &Config{}

	if devices := tree.Get("devices"); devices != nil {
		if devices.Kind != ast.KindSequence {
			return nil, fmt.Errorf("devices must be a sequence, got %s", devices.Kind)
		}
		for i, item := range devices.Items {
			if item.Kind != ast.KindMapping {
				return nil, fmt.Errorf("devices[%d] must be a mapping, got %s", i, item.Kind)
			}
			cfg.Devices = append(cfg.Devices, Device{
				Name:     item.Get("name").StringOr(""),
				Hostname: item.Get("hostname").StringOr(""),
			})
		}
	}

	cfg.DefaultDevice = tree.Get("default_device").StringOr("")
	cfg.Network.TimeoutSec = tree.Get("network").Get("timeout_sec").FloatOr(0)

	storage := tree.Get("storage")
	cfg.Storage.DBPath = storage.Get("db_path").StringOr("")
	cfg.Storage.StoreOnRead = storage.Get("store_on_read").BoolOr(false)
	cfg.Storage.EchoSummary = storage.Get("echo_summary").BoolOr(true)

	cfg.Thresholds = thresholdsFromTree(tree.Get("thresholds"))

	watch := tree.Get("watch")
	cfg.Watch.Schedule = watch.Get("schedule").StringOr("")
	cfg.Watch.MetricsListen = watch.Get("metrics_listen").StringOr("")

	logging := tree.Get("logging")
	cfg.Logging.Level = logging.Get("level").StringOr("")
	cfg.Logging.Format = logging.Get("format").StringOr("")

	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// thresholdsFromTree reads the optional per-metric rule mappings.
func thresholdsFromTree(node *ast.Value) thresholds.Set {
	return thresholds.Set{
		PM25:     levelFromTree(node.Get("pm25")),
		CO2:      levelFromTree(node.Get("co2")),
		TempC:    rangeFromTree(node.Get("temp_c")),
		Humidity: rangeFromTree(node.Get("humidity")),
	}
}

func levelFromTree(node *ast.Value) thresholds.Level {
	return thresholds.Level{
		Warn:     floatPtr(node.Get("warn")),
		Critical: floatPtr(node.Get("critical")),
	}
}

func rangeFromTree(node *ast.Value) thresholds.Range {
	return thresholds.Range{
		Min: floatPtr(node.Get("min")),
		Max: floatPtr(node.Get("max")),
	}
}

func floatPtr(v *ast.Value) *float64 {
	if f, ok := v.AsFloat(); ok {
		return &f
	}
	return nil
}

// ApplyDefaults fills unset fields with their documented defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Network.TimeoutSec <= 0 {
		cfg.Network.TimeoutSec = 5
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join("data", "airgauge.db")
	}
	if cfg.Watch.Schedule == "" {
		cfg.Watch.Schedule = "@every 5m"
	}
	if cfg.Watch.MetricsListen == "" {
		cfg.Watch.MetricsListen = "127.0.0.1:9102"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate rejects configurations that cannot be acted on.
func Validate(cfg *Config) error {
	for i, d := range cfg.Devices {
		if d.Name == "" && d.Hostname == "" {
			return fmt.Errorf("devices[%d]: name or hostname required", i)
		}
	}
	return nil
}

// ResolvePath returns the config file path to use: the explicit flag value
// if non-empty, else the AIRGAUGE_CONFIG environment variable, else the
// default location.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultPath
}
