package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	spfRuns       prometheus.Counter
	spfDuration   prometheus.Histogram
	cacheHits     prometheus.Counter
	topologyNodes prometheus.Gauge
}

// newMetrics builds the service collectors and registers them with reg.
// A nil reg leaves them unregistered, which keeps several services in one
// process from colliding.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	m := new(metrics)

	m.spfRuns = factory.NewCounter(prometheus.CounterOpts{
		Name: "linkstate_spf_runs_total",
		Help: "The number of shortest-path-first computations run",
	})

	m.spfDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkstate_spf_duration_seconds",
		Help:    "Time spent computing one forwarding table",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	m.cacheHits = factory.NewCounter(prometheus.CounterOpts{
		Name: "linkstate_table_cache_hits_total",
		Help: "The number of table requests answered from the cache",
	})

	m.topologyNodes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "linkstate_topology_nodes",
		Help: "The number of nodes in the current topology snapshot",
	})

	return m
}
