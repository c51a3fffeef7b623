// Package metrics exposes Prometheus counters for dataset uploads and source resolution.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered on a dedicated registry.
type Metrics struct {
	registry    *prometheus.Registry
	uploads     *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stock_dashboard",
			Name:      "dataset_uploads_total",
			Help:      "CSV uploads by mode and outcome.",
		}, []string{"mode", "outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stock_dashboard",
			Name:      "dataset_resolutions_total",
			Help:      "Dataset reads by kind and the source that served them.",
		}, []string{"kind", "source"}),
	}

	reg.MustRegister(
		m.uploads,
		m.resolutions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpload counts one upload attempt.
func (m *Metrics) ObserveUpload(mode, outcome string) {
	m.uploads.WithLabelValues(mode, outcome).Inc()
}

// ObserveResolution counts one dataset read served by source.
func (m *Metrics) ObserveResolution(kind, source string) {
	m.resolutions.WithLabelValues(kind, source).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
