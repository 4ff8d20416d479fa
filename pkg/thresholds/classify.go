package thresholds

// ClassifyPM25 returns the qualitative air-quality band for a PM2.5 value
// in µg/m³, following the EPA breakpoints the original device firmware
// reports against.
func ClassifyPM25(value *float64) string {
	if value == nil {
		return "Unknown"
	}
	switch v := *value; {
	case v <= 12:
		return "Excellent"
	case v <= 35.4:
		return "Moderate"
	case v <= 55.4:
		return "Unhealthy (Sensitive)"
	case v <= 150.4:
		return "Unhealthy"
	}
	return "Hazardous"
}

// ClassifyCO2 returns the qualitative band for a CO2 value in ppm.
func ClassifyCO2(value *float64) string {
	if value == nil {
		return "Unknown"
	}
	switch v := *value; {
	case v < 600:
		return "Fresh"
	case v < 1000:
		return "Good"
	case v < 2000:
		return "Moderate"
	}
	return "Poor"
}
