package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Publisher = (*publisherMetrics)(nil)

type publisherMetrics struct {
	published    *prometheus.CounterVec
	failed       *prometheus.CounterVec
	deadLettered *prometheus.CounterVec
	attempts     *prometheus.HistogramVec
}

func newPublisherMetrics(registry *promRegistry) *publisherMetrics {
	published := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifier_events_published_total",
			Help:      "Total number of notification events written to Kafka",
		},
		[]string{"topic", "event_type"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifier_publish_failures_total",
			Help:      "Total number of failed notification event writes",
		},
		[]string{"topic", "reason"},
	)

	deadLettered := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifier_dead_lettered_total",
			Help:      "Total number of notification events routed to the dead letter topic",
		},
		[]string{"dlq_topic", "original_topic"},
	)

	attempts := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: _namespace,
			Name:      "notifier_dead_letter_attempts",
			Help:      "Distribution of write attempts before an event was dead lettered",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		},
		[]string{"original_topic"},
	)

	registry.registry.MustRegister(published, failed, deadLettered, attempts)

	return &publisherMetrics{
		published:    published,
		failed:       failed,
		deadLettered: deadLettered,
		attempts:     attempts,
	}
}

func (m *publisherMetrics) Published(topic string, eventType string) {
	m.published.WithLabelValues(topic, eventType).Add(1)
}

func (m *publisherMetrics) PublishFailed(topic string, reason string) {
	m.failed.WithLabelValues(topic, reason).Add(1)
}

func (m *publisherMetrics) DeadLettered(topic string, originalTopic string, attempts int) {
	m.deadLettered.WithLabelValues(topic, originalTopic).Add(1)
	m.attempts.WithLabelValues(originalTopic).Observe(float64(attempts))
}
