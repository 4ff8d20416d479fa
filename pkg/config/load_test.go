package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `# airgauge configuration
devices:
  - name: kitchen
    hostname: 10.0.0.5
  - name: office
    hostname: airgradient.local
default_device: kitchen

network:
  timeout_sec: 2.5

storage:
  db_path: /tmp/readings.db
  store_on_read: true

thresholds:
  pm25:
    warn: 12
    critical: 35.4
  co2:
    warn: 1000
    critical: 2000
  temp_c:
    min: 18
    max: 27
  humidity:
    min: 30
    max: 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if len(cfg.Devices) != 2 {
		t.Fatalf("len(Devices) = %d, want 2", len(cfg.Devices))
	}
	if cfg.Devices[0].Name != "kitchen" || cfg.Devices[0].Hostname != "10.0.0.5" {
		t.Errorf("Devices[0] = %+v", cfg.Devices[0])
	}
	if cfg.DefaultDevice != "kitchen" {
		t.Errorf("DefaultDevice = %q, want kitchen", cfg.DefaultDevice)
	}
	if cfg.Network.TimeoutSec != 2.5 {
		t.Errorf("TimeoutSec = %v, want 2.5", cfg.Network.TimeoutSec)
	}
	if cfg.Storage.DBPath != "/tmp/readings.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if !cfg.Storage.StoreOnRead {
		t.Error("StoreOnRead = false, want true")
	}
	if !cfg.Storage.EchoSummary {
		t.Error("EchoSummary should default to true")
	}

	if cfg.Thresholds.PM25.Warn == nil || *cfg.Thresholds.PM25.Warn != 12 {
		t.Errorf("Thresholds.PM25.Warn = %v, want 12", cfg.Thresholds.PM25.Warn)
	}
	if cfg.Thresholds.PM25.Critical == nil || *cfg.Thresholds.PM25.Critical != 35.4 {
		t.Errorf("Thresholds.PM25.Critical = %v, want 35.4", cfg.Thresholds.PM25.Critical)
	}
	if cfg.Thresholds.TempC.Min == nil || *cfg.Thresholds.TempC.Min != 18 {
		t.Errorf("Thresholds.TempC.Min = %v, want 18", cfg.Thresholds.TempC.Min)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "devices:\n  - name: only\n    hostname: 10.0.0.9\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Network.TimeoutSec != 5 {
		t.Errorf("TimeoutSec = %v, want default 5", cfg.Network.TimeoutSec)
	}
	if cfg.Storage.DBPath != filepath.Join("data", "airgauge.db") {
		t.Errorf("DBPath = %q, want default", cfg.Storage.DBPath)
	}
	if cfg.Watch.Schedule != "@every 5m" {
		t.Errorf("Watch.Schedule = %q, want default", cfg.Watch.Schedule)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text defaults", cfg.Logging)
	}
	if cfg.Thresholds.PM25.Warn != nil {
		t.Error("unconfigured threshold bound should be nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "config not found") {
		t.Errorf("error = %v, want config-not-found hint", err)
	}
}

func TestLoad_ParseErrorSurfaced(t *testing.T) {
	path := writeConfig(t, "devices:\n - bad indent\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail on malformed document")
	}
	if !strings.Contains(err.Error(), "odd_indentation") {
		t.Errorf("error = %v, want odd_indentation parse error", err)
	}
}

func TestLoad_DeviceWithoutIdentity(t *testing.T) {
	path := writeConfig(t, "devices:\n  - model: one\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject a device with neither name nor hostname")
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("explicit.yaml"); got != "explicit.yaml" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
	t.Setenv(EnvConfigPath, "/etc/airgauge/config.yaml")
	if got := ResolvePath(""); got != "/etc/airgauge/config.yaml" {
		t.Errorf("ResolvePath(env) = %q", got)
	}
	t.Setenv(EnvConfigPath, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("ResolvePath(default) = %q, want %q", got, DefaultPath)
	}
}
