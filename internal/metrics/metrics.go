// Package metrics exposes Prometheus metrics for component renders.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusNotFound = "not_found"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	RendersTotal          *prometheus.CounterVec
	RenderDurationSeconds *prometheus.HistogramVec
	RenderBytes           *prometheus.HistogramVec
	HTTPRequestsTotal     *prometheus.CounterVec
}

// New creates a Metrics instance registered with registry.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		RendersTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uikit_renders_total",
				Help: "Total number of renders by component and status",
			},
			[]string{"component", "status"}, // status: ok, error, not_found
		),

		RenderDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uikit_render_duration_seconds",
				Help:    "Render duration in seconds by component",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"component"},
		),

		RenderBytes: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uikit_render_bytes",
				Help:    "Size of rendered HTML by component",
				Buckets: prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"component"},
		),

		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uikit_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
	}
}

// RecordRender records one render of component.
func (m *Metrics) RecordRender(component, status string, duration time.Duration, size int) {
	if m == nil {
		return
	}
	m.RendersTotal.WithLabelValues(component, status).Inc()
	if status != StatusNotFound {
		m.RenderDurationSeconds.WithLabelValues(component).Observe(duration.Seconds())
	}
	if status == StatusOK {
		m.RenderBytes.WithLabelValues(component).Observe(float64(size))
	}
}

// RecordRequest records an HTTP response. Unmatched routes share one label.
func (m *Metrics) RecordRequest(route string, code int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
