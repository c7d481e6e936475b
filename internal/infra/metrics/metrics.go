// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projectforge_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "projectforge_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Cache metrics
var (
	CacheRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projectforge_cache_refresh_total",
		Help: "Cache refreshes by cache and result",
	}, []string{"cache", "result"})

	CacheRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "projectforge_cache_refresh_duration_seconds",
		Help:    "Time to rebuild a cache generation",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
	}, []string{"cache"})

	CacheGeneration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "projectforge_cache_generation",
		Help: "Generation number of the snapshot currently served",
	}, []string{"cache"})
)

// History and query metrics
var (
	HistoryMastersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projectforge_history_masters_total",
		Help: "History masters written by entity and operation",
	}, []string{"entity", "op"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "projectforge_query_duration_seconds",
		Help:    "Time to run a list query",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 2, 10},
	}, []string{"entity"})
)

// Job metrics
var (
	JobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projectforge_jobs_total",
		Help: "Terminated jobs by area and final status",
	}, []string{"area", "status"})

	JobsRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "projectforge_jobs_running",
		Help: "Jobs currently running",
	})
)

// Worker metrics
var WorkerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "projectforge_worker_events_total",
	Help: "History events consumed by the worker by entity and result",
}, []string{"entity", "result"})

// Database pool metrics
var (
	DBPoolInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "projectforge_db_pool_in_use_connections",
		Help: "Connections currently in use",
	})

	DBPoolWaitTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projectforge_db_pool_wait_total",
		Help: "Connections waited for",
	})

	DBStatementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "projectforge_db_statement_duration_seconds",
		Help:    "SQL statement latency by statement kind",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.02, 0.1, 0.5, 2},
	}, []string{"kind"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
