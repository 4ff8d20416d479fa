// Airgauge is a command-line companion for AirGradient air quality
// monitors on the local network.
//
// It reads current measures from a device's HTTP API, evaluates them
// against configurable thresholds, keeps a local history in SQLite, and
// can run as a collection daemon with Prometheus metrics:
//
//	# Show current air quality for the default device
//	airgauge status
//
//	# Raw sensor payload as JSON
//	airgauge readings --json
//
//	# Stored history for the last 3 days
//	airgauge history --days 3
//
//	# Threshold check; exit code 1 on warnings, 2 on critical
//	airgauge alerts
//
//	# Fetch and persist one reading
//	airgauge store
//
//	# Run the collection daemon
//	airgauge watch
//
//	# Inspect or edit the configuration
//	airgauge config show
//	airgauge config set thresholds.co2.warn 900
//
// Configuration lives in config/config.yaml by default; --config and the
// AIRGAUGE_CONFIG environment variable override the location.
package main

func main() {
	Execute()
}
