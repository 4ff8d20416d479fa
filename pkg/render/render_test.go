package render

import (
	"strings"
	"testing"
	"time"

	"airgauge-hq/airgauge/pkg/device"
	"airgauge-hq/airgauge/pkg/storage"
	"airgauge-hq/airgauge/pkg/thresholds"
)

func ptr(v float64) *float64 { return &v }

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value    *float64
		unit     string
		decimals int
		want     string
	}{
		{nil, "µg/m³", 1, "n/a"},
		{ptr(6.54), "µg/m³", 1, "6.5 µg/m³"},
		{ptr(615), "ppm", 0, "615 ppm"},
		{ptr(22.1), "", 1, "22.1"},
		{ptr(-52), "dBm", 0, "-52 dBm"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.value, tt.unit, tt.decimals); got != tt.want {
			t.Errorf("FormatNumber(%v, %q, %d) = %q, want %q",
				tt.value, tt.unit, tt.decimals, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	r := NewWithColor(false)
	reading := device.Reading{
		"pm02Compensated": 6.5,
		"rco2":            615.0,
		"atmp":            22.1,
		"rhum":            47.0,
		"wifi":            -52.0,
		"model":           "I-9PSL",
		"firmware":        "3.1.9",
	}
	set := thresholds.Set{
		PM25: thresholds.Level{Warn: ptr(12), Critical: ptr(35.4)},
	}

	out := r.Status("kitchen", reading, set)

	for _, want := range []string{
		"AirGradient Status — kitchen",
		"Air Quality",
		"PM2.5:  6.5 µg/m³",
		"Excellent",
		"CO2:    615 ppm",
		"Fresh",
		"TVOC:   n/a",
		"Climate",
		"Temp:   22.1 °C",
		"Device",
		"WiFi:   -52 dBm (Good)",
		"Model:  I-9PSL",
		"FW:     3.1.9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Status() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Status() should have no ANSI codes with color off")
	}
}

func TestStatus_WeakWiFi(t *testing.T) {
	r := NewWithColor(false)
	out := r.Status("kitchen", device.Reading{"wifi": -71.0}, thresholds.Set{})
	if !strings.Contains(out, "WiFi:   -71 dBm (Okay)") {
		t.Errorf("Status() = %s, want weak WiFi marked Okay", out)
	}
}

func TestReadings_SortedKeys(t *testing.T) {
	r := NewWithColor(false)
	out := r.Readings(device.Reading{"rco2": 615.0, "atmp": 22.1, "model": "I-9PSL"})

	atmp := strings.Index(out, "atmp")
	model := strings.Index(out, "model")
	rco2 := strings.Index(out, "rco2")
	if atmp < 0 || model < 0 || rco2 < 0 {
		t.Fatalf("Readings() missing fields:\n%s", out)
	}
	if !(atmp < model && model < rco2) {
		t.Errorf("Readings() keys not sorted:\n%s", out)
	}
}

func TestAlerts(t *testing.T) {
	r := NewWithColor(false)

	if out := r.Alerts(nil); !strings.Contains(out, "No alerts") {
		t.Errorf("Alerts(nil) = %q", out)
	}

	alerts := []thresholds.Alert{
		{Severity: thresholds.SeverityWarn, Message: "CO2: 1200"},
	}
	out := r.Alerts(alerts)
	if !strings.Contains(out, "WARN CO2: 1200") {
		t.Errorf("Alerts() = %q", out)
	}
}

func TestAlerts_ColorBySeverity(t *testing.T) {
	r := NewWithColor(true)
	critical := []thresholds.Alert{
		{Severity: thresholds.SeverityCritical, Message: "PM2.5: 80"},
	}
	if out := r.Alerts(critical); !strings.Contains(out, styleRed) {
		t.Errorf("critical alerts should render red: %q", out)
	}
	warn := []thresholds.Alert{
		{Severity: thresholds.SeverityWarn, Message: "CO2: 1200"},
	}
	if out := r.Alerts(warn); !strings.Contains(out, styleYellow) {
		t.Errorf("warn alerts should render yellow: %q", out)
	}
}

func TestHistory(t *testing.T) {
	r := NewWithColor(false)
	rows := []storage.Row{
		{Timestamp: time.Date(2026, 8, 23, 14, 30, 0, 0, time.Local), PM25: ptr(6.5), CO2: ptr(615)},
	}
	out := r.History(rows, 7)
	if !strings.Contains(out, "History (7 days)") {
		t.Errorf("History() missing header:\n%s", out)
	}
	if !strings.Contains(out, "2026-08-23 14:30") {
		t.Errorf("History() missing timestamp:\n%s", out)
	}
	if !strings.Contains(out, "Temp n/a") {
		t.Errorf("History() missing n/a for absent metric:\n%s", out)
	}
}
