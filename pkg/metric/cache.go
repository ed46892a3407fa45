package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Cache = (*cacheMetrics)(nil)

type cacheMetrics struct {
	hitCounter      *prometheus.CounterVec
	missCounter     *prometheus.CounterVec
	evictionCounter *prometheus.CounterVec
}

func newCacheMetrics(registry *promRegistry) *cacheMetrics {
	hits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits by cache name",
		},
		[]string{"cache"},
	)

	misses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses by cache name",
		},
		[]string{"cache"},
	)

	evictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions by cache name and reason",
		},
		[]string{"cache", "reason"},
	)

	registry.registry.MustRegister(hits, misses, evictions)

	return &cacheMetrics{
		hitCounter:      hits,
		missCounter:     misses,
		evictionCounter: evictions,
	}
}

func (m *cacheMetrics) Hit(cacheName string) {
	m.hitCounter.WithLabelValues(cacheName).Add(1)
}

func (m *cacheMetrics) Miss(cacheName string) {
	m.missCounter.WithLabelValues(cacheName).Add(1)
}

func (m *cacheMetrics) Eviction(cacheName string, reason string) {
	m.evictionCounter.WithLabelValues(cacheName, reason).Add(1)
}
