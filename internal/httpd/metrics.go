package httpd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gocalc"

// Metrics holds the Prometheus instruments for the HTTP service. All
// operations on them are thread-safe.
type Metrics struct {
	// CalcOperationsTotal counts evaluated operations.
	// Labels: op (add, subtract, multiply, divide), outcome (ok, error)
	CalcOperationsTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts requests by route template.
	// Labels: route, method, status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration measures request latency by route template.
	HTTPRequestDuration *prometheus.HistogramVec

	// WorksheetEntries measures worksheet batch sizes.
	WorksheetEntries prometheus.Histogram
}

// NewMetrics registers the gocalc instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CalcOperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "calc_operations_total",
			Help:      "Evaluated arithmetic operations by op and outcome.",
		}, []string{"op", "outcome"}),

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method, and status.",
		}, []string{"route", "method", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		WorksheetEntries: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "worksheet_entries",
			Help:      "Entries per evaluated worksheet.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

// RecordOperation bumps the operation counter.
func (m *Metrics) RecordOperation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.CalcOperationsTotal.WithLabelValues(op, outcome).Inc()
}
