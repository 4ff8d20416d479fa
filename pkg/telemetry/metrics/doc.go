// Package metrics exposes the watch daemon's readings and poll counters
// as Prometheus metrics on a private registry.
package metrics
