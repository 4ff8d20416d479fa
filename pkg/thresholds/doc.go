// Package thresholds classifies air-quality readings against configurable
// bounds.
//
// Two rule shapes exist: level rules (warn/critical upper bounds, used for
// PM2.5 and CO2) and range rules (min/max bands, used for temperature and
// humidity). Evaluate produces ordered alerts prefixed WARN or CRITICAL;
// the highest severity drives the alerts command's exit code.
package thresholds
