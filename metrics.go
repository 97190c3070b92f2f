package gosquirrelstash

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// managerMetrics holds the per-Manager Prometheus instruments. Each Manager
// carries its own registry so several instances can coexist in one process
// without collector collisions.
type managerMetrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	sets     prometheus.Counter
	deletes  prometheus.Counter
	degraded prometheus.Counter
}

func newManagerMetrics(reg *prometheus.Registry, mode Mode, entryCount func() int) *managerMetrics {
	factory := promauto.With(reg)

	factory.NewGauge(prometheus.GaugeOpts{
		Name: "squirrelstash_cache_mode",
		Help: "Storage mode fixed at construction: 0 backend, 1 fallback.",
	}).Set(float64(mode))

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "squirrelstash_cache_fallback_entries",
		Help: "Number of entries held by the in-process fallback store.",
	}, func() float64 { return float64(entryCount()) })

	return &managerMetrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "squirrelstash_cache_hits_total",
			Help: "Reads that returned a cached value.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "squirrelstash_cache_misses_total",
			Help: "Reads that found no usable value.",
		}),
		sets: factory.NewCounter(prometheus.CounterOpts{
			Name: "squirrelstash_cache_sets_total",
			Help: "Writes stored successfully.",
		}),
		deletes: factory.NewCounter(prometheus.CounterOpts{
			Name: "squirrelstash_cache_deletes_total",
			Help: "Removals applied successfully.",
		}),
		degraded: factory.NewCounter(prometheus.CounterOpts{
			Name: "squirrelstash_cache_degraded_ops_total",
			Help: "Operations that failed soft against the backend.",
		}),
	}
}

// MetricsHandler returns an http.Handler that serves this Manager's
// Prometheus metrics.
func (m *Manager) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
