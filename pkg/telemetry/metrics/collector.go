package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airgauge-hq/airgauge/pkg/device"
)

// Collector exports the latest readings and collection counters for
// Prometheus scraping. The watch daemon updates it after every poll.
//
// All metrics are labeled by device name; gauges hold the most recent
// value and are cleared for fields a reading stops reporting.
type Collector struct {
	registry *prometheus.Registry

	gauges map[string]*prometheus.GaugeVec

	readingsStored *prometheus.CounterVec
	fetchErrors    *prometheus.CounterVec
}

// gaugeSpecs maps metric names to the reading accessor each one exports.
var gaugeSpecs = []struct {
	name string
	help string
	read func(device.Reading) *float64
}{
	{"pm25_ugm3", "Latest PM2.5 concentration (compensated when available)", device.Reading.PM25},
	{"co2_ppm", "Latest CO2 concentration", device.Reading.CO2},
	{"temperature_celsius", "Latest temperature (compensated when available)", device.Reading.Temperature},
	{"humidity_percent", "Latest relative humidity (compensated when available)", device.Reading.Humidity},
	{"tvoc_index", "Latest TVOC index", device.Reading.TVOC},
	{"nox_index", "Latest NOx index", device.Reading.NOx},
	{"wifi_dbm", "Latest WiFi signal strength", device.Reading.WiFi},
}

// NewCollector creates a collector backed by a private registry, so the
// endpoint exposes only airgauge metrics.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "airgauge"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		gauges:   make(map[string]*prometheus.GaugeVec, len(gaugeSpecs)),
	}

	for _, spec := range gaugeSpecs {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      spec.name,
			Help:      spec.help,
		}, []string{"device"})
		c.registry.MustRegister(g)
		c.gauges[spec.name] = g
	}

	c.readingsStored = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_stored_total",
		Help:      "Readings fetched and persisted",
	}, []string{"device"})
	c.fetchErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_errors_total",
		Help:      "Failed attempts to fetch a reading",
	}, []string{"device"})
	c.registry.MustRegister(c.readingsStored, c.fetchErrors)

	return c
}

// Observe records a successful poll: gauges take the reading's current
// values and the stored counter advances.
func (c *Collector) Observe(deviceName string, r device.Reading) {
	for _, spec := range gaugeSpecs {
		g := c.gauges[spec.name]
		if v := spec.read(r); v != nil {
			g.WithLabelValues(deviceName).Set(*v)
		} else {
			g.DeleteLabelValues(deviceName)
		}
	}
	c.readingsStored.WithLabelValues(deviceName).Inc()
}

// RecordFetchError counts a failed poll for the device.
func (c *Collector) RecordFetchError(deviceName string) {
	c.fetchErrors.WithLabelValues(deviceName).Inc()
}

// Handler returns the scrape endpoint for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the private registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
