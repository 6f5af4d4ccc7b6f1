// Package metrics exposes Prometheus collectors for the riwayat engine.
// All methods are nil-safe so that tests and tools can run without a registry.
package metrics

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "manuver"

// Outcome labels.
const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultStale   = "stale"
	ResultEmpty   = "empty"
	ResultBusy    = "busy"
	ResultApplied = "applied"
)

// Metrics groups the collectors registered by New.
type Metrics struct {
	itemBatches    *prometheus.CounterVec
	batchSize      prometheus.Histogram
	searchBuilds   *prometheus.CounterVec
	undos          *prometheus.CounterVec
	activeSessions prometheus.Gauge
	registerer     prometheus.Registerer
	gatherer       prometheus.Gatherer
}

// New creates the collectors and registers them on a fresh registry together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		itemBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_batch_fetches_total",
			Help:      "Batched action item fetches by result.",
		}, []string{"result"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "item_batch_records",
			Help:      "Number of records requested per batched item fetch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		searchBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_builds_total",
			Help:      "Item match set computations by outcome.",
		}, []string{"result"}),
		undos: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undo_total",
			Help:      "Undo attempts by outcome.",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Browsing sessions currently held in memory.",
		}),
		registerer: reg,
		gatherer:   reg,
	}
	reg.MustRegister(m.itemBatches, m.batchSize, m.searchBuilds, m.undos, m.activeSessions)
	return m
}

// ItemBatch records one batched item fetch of n records.
func (m *Metrics) ItemBatch(n int, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultFailed
	}
	m.itemBatches.WithLabelValues(result).Inc()
	m.batchSize.Observe(float64(n))
}

// SearchBuild records the outcome of one match set computation.
func (m *Metrics) SearchBuild(result string) {
	if m == nil {
		return
	}
	m.searchBuilds.WithLabelValues(result).Inc()
}

// Undo records the outcome of one undo attempt.
func (m *Metrics) Undo(result string) {
	if m == nil {
		return
	}
	m.undos.WithLabelValues(result).Inc()
}

// SessionsActive sets the number of live sessions.
func (m *Metrics) SessionsActive(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// poolStater is implemented by *pgxpool.Pool.
type poolStater interface {
	Stat() *pgxpool.Stat
}

// ObservePool exports connection pool gauges sampled from p on every scrape.
// Call it once per Metrics.
func (m *Metrics) ObservePool(p poolStater) {
	if m == nil || p == nil {
		return
	}

	gauge := func(name, help string, value func(*pgxpool.Stat) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(value(p.Stat())) })
	}

	m.registerer.MustRegister(
		gauge("total_conns", "Open connections.", (*pgxpool.Stat).TotalConns),
		gauge("idle_conns", "Idle connections.", (*pgxpool.Stat).IdleConns),
		gauge("acquired_conns", "Connections checked out by queries.", (*pgxpool.Stat).AcquiredConns),
		gauge("max_conns", "Configured connection limit.", (*pgxpool.Stat).MaxConns),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
