package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application collectors that fiberprometheus does not cover
type Metrics struct {
	CacheLookups       *prometheus.CounterVec // list cache lookups by scope and result (hit, miss, error)
	CacheInvalidations *prometheus.CounterVec // scope-wide evictions by scope
	GateRejections     prometheus.Counter     // requests refused by the shared secret gate
}

// New registers the collectors on reg, or on the default registerer when reg is nil
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalogdb",
				Name:      "cache_lookups_total",
				Help:      "List cache lookups by scope and result",
			},
			[]string{"scope", "result"},
		),
		CacheInvalidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalogdb",
				Name:      "cache_invalidations_total",
				Help:      "List cache scope invalidations",
			},
			[]string{"scope"},
		),
		GateRejections: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalogdb",
				Name:      "gate_rejections_total",
				Help:      "Requests rejected by the shared secret gate",
			},
		),
	}
}

// CacheHit records a cache hit for scope
func (m *Metrics) CacheHit(scope string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(scope, "hit").Inc()
}

// CacheMiss records a cache miss for scope
func (m *Metrics) CacheMiss(scope string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(scope, "miss").Inc()
}

// CacheError records a failed cache read for scope
func (m *Metrics) CacheError(scope string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(scope, "error").Inc()
}

// CacheInvalidated records a scope-wide eviction
func (m *Metrics) CacheInvalidated(scope string) {
	if m == nil {
		return
	}
	m.CacheInvalidations.WithLabelValues(scope).Inc()
}

// GateRejected records a request refused by the shared secret gate
func (m *Metrics) GateRejected() {
	if m == nil {
		return
	}
	m.GateRejections.Inc()
}
