package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Transaction = (*transactionMetrics)(nil)

type transactionMetrics struct {
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newTransactionMetrics(registry *promRegistry) *transactionMetrics {
	// Payment confirmation is a single-row update, so buckets stay narrow.
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: _namespace,
			Subsystem: "db",
			Name:      "transaction_duration_seconds",
			Help:      "Duration of database transactions, retries included",
			Buckets:   []float64{0.002, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	retries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "db",
			Name:      "transaction_retries_total",
			Help:      "Transaction attempts repeated after a serialization or connection error",
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "db",
			Name:      "transaction_failures_total",
			Help:      "Transactions that gave up",
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(duration, retries, failures)

	return &transactionMetrics{
		duration: duration,
		retries:  retries,
		failures: failures,
	}
}

func (m *transactionMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *transactionMetrics) IncrementRetries(operation string) {
	m.retries.WithLabelValues(operation).Inc()
}

func (m *transactionMetrics) IncrementFailures(operation string) {
	m.failures.WithLabelValues(operation).Inc()
}
