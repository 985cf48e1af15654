package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mwopts "github.com/kart-io/ai-engine/pkg/options/middleware"
)

// MetricsCollector holds the Prometheus collectors for HTTP traffic.
type MetricsCollector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
}

// NewMetricsCollector creates a collector with its own registry.
func NewMetricsCollector(namespace, subsystem string) *MetricsCollector {
	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
	}

	m.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	m.activeRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_active",
		Help:      "Current number of active requests.",
	})

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.activeRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the /metrics scrape handler for this collector's registry.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records a completed request.
func (m *MetricsCollector) RecordRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.requestsTotal.With(labels).Inc()
	m.requestDuration.With(labels).Observe(duration.Seconds())
}

// MetricsWithOptions returns a middleware that records request metrics into
// the given collector. Scrapes of the metrics path itself are not recorded.
func MetricsWithOptions(opts mwopts.MetricsOptions, collector *MetricsCollector) gin.HandlerFunc {
	if collector == nil {
		collector = NewMetricsCollector(opts.Namespace, opts.Subsystem)
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == opts.Path {
			c.Next()
			return
		}

		collector.activeRequests.Inc()
		start := time.Now()

		c.Next()

		collector.activeRequests.Dec()
		collector.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
