package device

import (
	"fmt"
	"strings"

	"airgauge-hq/airgauge/pkg/config"
)

// Resolve selects one device record from the configuration.
//
// Selection order: an explicit hint matches a device's name or hostname
// (an unknown hint is an error), then the configured default_device by
// name, then the first configured device.
func Resolve(cfg *config.Config, hint string) (config.Device, error) {
	if len(cfg.Devices) == 0 {
		return config.Device{}, fmt.Errorf("no devices configured; add devices to %s", cfg.Path)
	}

	if hint != "" {
		for _, d := range cfg.Devices {
			if hint == d.Name || hint == d.Hostname {
				return d, nil
			}
		}
		return config.Device{}, fmt.Errorf("device %q not found in config", hint)
	}

	if cfg.DefaultDevice != "" {
		for _, d := range cfg.Devices {
			if d.Name == cfg.DefaultDevice {
				return d, nil
			}
		}
	}

	return cfg.Devices[0], nil
}

// Endpoint returns the device's current-measures URL. A hostname carrying
// an explicit http(s):// prefix is used as-is (minus any trailing slash);
// a bare hostname gets plain http.
func Endpoint(d config.Device) (string, error) {
	if d.Hostname == "" {
		return "", fmt.Errorf("device %q has no hostname in config", d.Name)
	}
	if strings.HasPrefix(d.Hostname, "http://") || strings.HasPrefix(d.Hostname, "https://") {
		return strings.TrimRight(d.Hostname, "/") + "/measures/current", nil
	}
	return fmt.Sprintf("http://%s/measures/current", d.Hostname), nil
}

// DisplayName returns the device's name, falling back to its hostname.
// Used both for output headers and as the device column in storage.
func DisplayName(d config.Device) string {
	if d.Name != "" {
		return d.Name
	}
	return d.Hostname
}
