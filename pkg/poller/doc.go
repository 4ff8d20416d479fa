// Package poller implements the airgauge watch daemon: scheduled
// collection of readings from all configured devices, persistence into
// the readings store, Prometheus metrics, and config hot-reload.
package poller
