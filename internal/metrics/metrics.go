// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package metrics holds the Prometheus collectors for Marquee. Collectors
// are registered on the default registry and exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Index names used as label values.
const (
	IndexPrimary = "primary"
	IndexLSA     = "lsa"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Ranking Metrics
	RankRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_requests_total",
			Help: "Total number of ranking requests by engine and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: "ok", "degraded", "fallback", "partial", "not_ready", "error"
	)

	RankDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rank_duration_seconds",
			Help:    "Duration of ranking requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"mode"},
	)

	QueryVectorCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_vector_cache_hits_total",
			Help: "Total number of query vector cache hits",
		},
	)

	QueryVectorCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_vector_cache_misses_total",
			Help: "Total number of query vector cache misses",
		},
	)

	// Index Build Metrics
	IndexBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "index_builds_total",
			Help: "Total number of index builds by index and result",
		},
		[]string{"index", "result"},
	)

	IndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "index_build_duration_seconds",
			Help:    "Duration of index builds in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 300, 900, 1800},
		},
		[]string{"index"},
	)

	IndexSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "index_documents",
			Help: "Number of actors in the published index",
		},
		[]string{"index"},
	)

	IndexLastBuild = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "index_last_build_timestamp_seconds",
			Help: "Unix time of the last successful index build",
		},
		[]string{"index"},
	)

	LSAReducedRank = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lsa_reduced_rank",
			Help: "Number of singular values kept by the published LSA index",
		},
	)

	ActorsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actors_classified_total",
			Help: "Total number of actor emotion profiles produced by source",
		},
		[]string{"source"}, // "oracle", "cache"
	)

	// Oracle Metrics
	OracleRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_requests_total",
			Help: "Total number of classification oracle requests",
		},
		[]string{"operation", "result"},
	)

	OracleRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Duration of classification oracle requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of events published by topic and result",
		},
		[]string{"topic", "result"},
	)
)

// RecordDBQuery records a repository query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records a served HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRank records one ranking request.
func RecordRank(mode, outcome string, duration time.Duration) {
	RankRequestsTotal.WithLabelValues(mode, outcome).Inc()
	RankDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordQueryVectorCache records a query vector cache lookup.
func RecordQueryVectorCache(hit bool) {
	if hit {
		QueryVectorCacheHits.Inc()
	} else {
		QueryVectorCacheMisses.Inc()
	}
}

// RecordIndexBuild records an index build. size is only applied on success.
func RecordIndexBuild(index string, duration time.Duration, size int, err error) {
	IndexBuildDuration.WithLabelValues(index).Observe(duration.Seconds())
	if err != nil {
		IndexBuildsTotal.WithLabelValues(index, "error").Inc()
		return
	}
	IndexBuildsTotal.WithLabelValues(index, "success").Inc()
	IndexSize.WithLabelValues(index).Set(float64(size))
	IndexLastBuild.WithLabelValues(index).Set(float64(time.Now().Unix()))
}

// RecordClassified counts actor profiles by where they came from.
func RecordClassified(source string, n int) {
	if n > 0 {
		ActorsClassified.WithLabelValues(source).Add(float64(n))
	}
}

// RecordOracleRequest records a classification oracle call.
func RecordOracleRequest(operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	OracleRequestsTotal.WithLabelValues(operation, result).Inc()
	OracleRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEventPublished records an event publish attempt.
func RecordEventPublished(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}
