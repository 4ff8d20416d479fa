// Package device selects AirGradient monitors from the configuration and
// fetches their current telemetry.
//
// A Reading keeps the device's JSON payload verbatim (for raw display and
// forward-compatible storage) and layers typed accessors on top. Metrics
// with both raw and compensated variants (PM2.5, temperature, humidity)
// prefer the compensated value when the firmware reports it.
package device
