package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"airgauge-hq/airgauge/pkg/device"
	"airgauge-hq/airgauge/pkg/storage"
	"airgauge-hq/airgauge/pkg/thresholds"
)

// ANSI style codes.
const (
	styleReset  = "\033[0m"
	styleBold   = "\033[1m"
	styleRed    = "\033[31m"
	styleGreen  = "\033[32m"
	styleYellow = "\033[33m"
	styleGray   = "\033[90m"
)

// Renderer formats command output. Color is applied only when stdout is a
// terminal and NO_COLOR is unset.
type Renderer struct {
	color bool
}

// New creates a renderer with color auto-detected from stdout.
func New() *Renderer {
	fd := os.Stdout.Fd()
	color := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) &&
		os.Getenv("NO_COLOR") == ""
	return &Renderer{color: color}
}

// NewWithColor creates a renderer with color forced on or off.
func NewWithColor(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(text, code string) string {
	if !r.color {
		return text
	}
	return code + text + styleReset
}

// Bold renders text emphasized.
func (r *Renderer) Bold(text string) string { return r.paint(text, styleBold) }

// Errorf renders an error line for stderr.
func (r *Renderer) Errorf(format string, args ...any) string {
	return r.paint(fmt.Sprintf(format, args...), styleRed)
}

// Successf renders a confirmation line.
func (r *Renderer) Successf(format string, args ...any) string {
	return r.paint(fmt.Sprintf(format, args...), styleGreen)
}

// FormatNumber renders an optional numeric value with a unit, "n/a" when
// the device did not report it. Negative decimals mean no rounding.
func FormatNumber(value *float64, unit string, decimals int) string {
	if value == nil {
		return "n/a"
	}
	var num string
	if decimals >= 0 {
		num = fmt.Sprintf("%.*f", decimals, *value)
	} else {
		num = fmt.Sprintf("%v", *value)
	}
	return strings.TrimSpace(num + " " + unit)
}

// Status renders the formatted status block for one reading: air quality,
// climate, and device sections.
func (r *Renderer) Status(deviceName string, rd device.Reading, set thresholds.Set) string {
	pm25 := rd.PM25()
	co2 := rd.CO2()
	tvoc := rd.TVOC()
	nox := rd.NOx()
	temp := rd.Temperature()
	humid := rd.Humidity()
	wifi := rd.WiFi()

	wifiQuality := "Okay"
	if wifi != nil && *wifi > -60 {
		wifiQuality = "Good"
	}

	sections := []string{
		r.Bold("AirGradient Status — " + deviceName),
		"",
		"Air Quality",
		fmt.Sprintf("  PM2.5:  %s  %s %s",
			FormatNumber(pm25, "µg/m³", 1), r.levelIcon(pm25, set.PM25), thresholds.ClassifyPM25(pm25)),
		fmt.Sprintf("  CO2:    %s  %s %s",
			FormatNumber(co2, "ppm", 0), r.levelIcon(co2, set.CO2), thresholds.ClassifyCO2(co2)),
		fmt.Sprintf("  TVOC:   %s  %s",
			FormatNumber(tvoc, "index", 0), r.levelIcon(tvoc, thresholds.Level{})),
		fmt.Sprintf("  NOx:    %s  %s",
			FormatNumber(nox, "index", 0), r.levelIcon(nox, thresholds.Level{})),
		"",
		"Climate",
		fmt.Sprintf("  Temp:   %s  %s", FormatNumber(temp, "°C", 1), r.rangeIcon(temp, set.TempC)),
		fmt.Sprintf("  Humid:  %s  %s", FormatNumber(humid, "%", 1), r.rangeIcon(humid, set.Humidity)),
		"",
		"Device",
		fmt.Sprintf("  WiFi:   %s (%s)", FormatNumber(wifi, "dBm", 0), wifiQuality),
		fmt.Sprintf("  Model:  %s", textOr(rd.Text("model"), "n/a")),
		fmt.Sprintf("  FW:     %s", textOr(rd.Text("firmware"), "n/a")),
	}
	return strings.Join(sections, "\n")
}

// levelIcon marks a value against warn/critical bounds.
func (r *Renderer) levelIcon(value *float64, rule thresholds.Level) string {
	switch {
	case value == nil:
		return r.paint("?", styleGray)
	case rule.Critical != nil && *value >= *rule.Critical:
		return r.paint("!!", styleRed)
	case rule.Warn != nil && *value >= *rule.Warn:
		return r.paint("!", styleYellow)
	}
	return r.paint("OK", styleGreen)
}

// rangeIcon marks a value against a min/max band.
func (r *Renderer) rangeIcon(value *float64, rule thresholds.Range) string {
	switch {
	case value == nil:
		return r.paint("?", styleGray)
	case rule.Min != nil && *value < *rule.Min:
		return r.paint("Low", styleYellow)
	case rule.Max != nil && *value > *rule.Max:
		return r.paint("High", styleYellow)
	}
	return r.paint("OK", styleGreen)
}

// Readings renders the raw payload, one sorted "key: value" line per field.
func (r *Renderer) Readings(rd device.Reading) string {
	lines := []string{r.Bold("Raw Readings")}
	for _, key := range rd.Keys() {
		lines = append(lines, fmt.Sprintf("  %s: %v", key, rd[key]))
	}
	return strings.Join(lines, "\n")
}

// Alerts renders threshold violations, or a no-alerts confirmation.
func (r *Renderer) Alerts(alerts []thresholds.Alert) string {
	if len(alerts) == 0 {
		return r.Successf("No alerts")
	}
	code := styleYellow
	if thresholds.MaxSeverity(alerts) == thresholds.SeverityCritical {
		code = styleRed
	}
	lines := []string{r.Bold("Alerts")}
	for _, a := range alerts {
		lines = append(lines, r.paint("  "+a.String(), code))
	}
	return strings.Join(lines, "\n")
}

// History renders stored readings, one line per row, newest first.
func (r *Renderer) History(rows []storage.Row, days int) string {
	lines := []string{r.Bold(fmt.Sprintf("History (%d days)", days))}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s  PM2.5 %s  CO2 %s  Temp %s  Hum %s",
			row.Timestamp.Local().Format("2006-01-02 15:04"),
			FormatNumber(row.PM25, "µg/m³", 1),
			FormatNumber(row.CO2, "ppm", 0),
			FormatNumber(row.Temperature, "°C", 1),
			FormatNumber(row.Humidity, "%", 1),
		))
	}
	return strings.Join(lines, "\n")
}

func textOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
