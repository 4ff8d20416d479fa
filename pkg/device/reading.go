package device

import (
	"sort"

	"airgauge-hq/airgauge/pkg/thresholds"
)

// Reading is one decoded telemetry payload from a device's
// /measures/current endpoint. Keys follow the firmware's JSON field names;
// unknown fields are preserved for raw display and storage.
type Reading map[string]any

// Float returns a numeric field. JSON numbers decode as float64; anything
// else reports false.
func (r Reading) Float(key string) (float64, bool) {
	v, ok := r[key].(float64)
	return v, ok
}

// Text returns a string field, or "" when absent or non-string.
func (r Reading) Text(key string) string {
	s, _ := r[key].(string)
	return s
}

// Keys returns the payload's field names in sorted order.
func (r Reading) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// optional returns a pointer to the field's numeric value, nil when absent.
func (r Reading) optional(key string) *float64 {
	if v, ok := r.Float(key); ok {
		return &v
	}
	return nil
}

// preferred returns the first of the two fields that is present, nil when
// neither is. Compensated values take precedence over raw ones.
func (r Reading) preferred(compensated, raw string) *float64 {
	if v := r.optional(compensated); v != nil {
		return v
	}
	return r.optional(raw)
}

// PM25 returns the compensated PM2.5 value, falling back to the raw one.
func (r Reading) PM25() *float64 { return r.preferred("pm02Compensated", "pm02") }

// CO2 returns the CO2 concentration in ppm.
func (r Reading) CO2() *float64 { return r.optional("rco2") }

// Temperature returns the compensated temperature in °C, falling back to
// the raw one.
func (r Reading) Temperature() *float64 { return r.preferred("atmpCompensated", "atmp") }

// Humidity returns the compensated relative humidity, falling back to the
// raw one.
func (r Reading) Humidity() *float64 { return r.preferred("rhumCompensated", "rhum") }

// TVOC returns the TVOC index.
func (r Reading) TVOC() *float64 { return r.optional("tvocIndex") }

// NOx returns the NOx index.
func (r Reading) NOx() *float64 { return r.optional("noxIndex") }

// WiFi returns the WiFi signal strength in dBm.
func (r Reading) WiFi() *float64 { return r.optional("wifi") }

// Metrics extracts the alertable values for threshold evaluation.
func (r Reading) Metrics() thresholds.Metrics {
	return thresholds.Metrics{
		PM25:     r.PM25(),
		CO2:      r.CO2(),
		TempC:    r.Temperature(),
		Humidity: r.Humidity(),
	}
}
