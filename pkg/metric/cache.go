package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Cache = (*cacheMetrics)(nil)

type cacheMetrics struct {
	lookups   *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

func newCacheMetrics(registry *promRegistry) *cacheMetrics {
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by cache name and result",
		},
		[]string{"cache", "result"},
	)

	evictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries removed from the cache, by reason",
		},
		[]string{"cache", "reason"},
	)

	entries := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: _namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Entries currently held by the cache",
		},
		[]string{"cache"},
	)

	registry.registry.MustRegister(lookups, evictions, entries)

	return &cacheMetrics{
		lookups:   lookups,
		evictions: evictions,
		entries:   entries,
	}
}

func (m *cacheMetrics) Hit(cacheName string) {
	m.lookups.WithLabelValues(cacheName, "hit").Inc()
}

func (m *cacheMetrics) Miss(cacheName string) {
	m.lookups.WithLabelValues(cacheName, "miss").Inc()
}

func (m *cacheMetrics) Eviction(cacheName string, reason string) {
	m.evictions.WithLabelValues(cacheName, reason).Inc()
}

func (m *cacheMetrics) Size(cacheName string, size int) {
	m.entries.WithLabelValues(cacheName).Set(float64(size))
}
