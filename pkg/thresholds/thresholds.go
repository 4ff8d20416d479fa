package thresholds

import "fmt"

// Level is an upper-bound rule: the value crosses into warn at Warn and
// into critical at Critical (inclusive). A nil bound is not enforced.
type Level struct {
	Warn     *float64
	Critical *float64
}

// Range is a band rule: values below Min or above Max raise a warning.
// A nil bound is not enforced.
type Range struct {
	Min *float64
	Max *float64
}

// Set holds the configured rules for the metrics airgauge alerts on.
type Set struct {
	PM25     Level
	CO2      Level
	TempC    Range
	Humidity Range
}

// Metrics carries one reading's alertable values. Nil means the device did
// not report the field; absent values never alert.
type Metrics struct {
	PM25     *float64
	CO2      *float64
	TempC    *float64
	Humidity *float64
}

// Severity orders alert levels; it doubles as the process exit code of the
// alerts command.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityCritical
)

// String returns the alert prefix for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "WARN"
	case SeverityCritical:
		return "CRITICAL"
	}
	return "OK"
}

// Alert is one threshold violation.
type Alert struct {
	Severity Severity
	Message  string
}

// String renders the alert with its WARN/CRITICAL prefix.
func (a Alert) String() string {
	return fmt.Sprintf("%s %s", a.Severity, a.Message)
}

// Evaluate classifies a reading's metrics against the rule set and returns
// the violations in a fixed order: PM2.5, CO2, temperature, humidity.
func Evaluate(m Metrics, set Set) []Alert {
	var alerts []Alert

	if a, ok := checkLevel("PM2.5", m.PM25, set.PM25); ok {
		alerts = append(alerts, a)
	}
	if a, ok := checkLevel("CO2", m.CO2, set.CO2); ok {
		alerts = append(alerts, a)
	}
	alerts = append(alerts, checkRange("Temperature", m.TempC, set.TempC)...)
	alerts = append(alerts, checkRange("Humidity", m.Humidity, set.Humidity)...)

	return alerts
}

// MaxSeverity returns the highest severity among the alerts.
func MaxSeverity(alerts []Alert) Severity {
	max := SeverityOK
	for _, a := range alerts {
		if a.Severity > max {
			max = a.Severity
		}
	}
	return max
}

func checkLevel(label string, value *float64, rule Level) (Alert, bool) {
	if value == nil {
		return Alert{}, false
	}
	if rule.Critical != nil && *value >= *rule.Critical {
		return Alert{SeverityCritical, fmt.Sprintf("%s: %v", label, *value)}, true
	}
	if rule.Warn != nil && *value >= *rule.Warn {
		return Alert{SeverityWarn, fmt.Sprintf("%s: %v", label, *value)}, true
	}
	return Alert{}, false
}

func checkRange(label string, value *float64, rule Range) []Alert {
	if value == nil {
		return nil
	}
	var alerts []Alert
	if rule.Min != nil && *value < *rule.Min {
		alerts = append(alerts, Alert{SeverityWarn, fmt.Sprintf("%s low: %v", label, *value)})
	}
	if rule.Max != nil && *value > *rule.Max {
		alerts = append(alerts, Alert{SeverityWarn, fmt.Sprintf("%s high: %v", label, *value)})
	}
	return alerts
}
