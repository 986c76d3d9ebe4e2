// Package metrics defines the Prometheus metrics exposed on /metrics.
// Collectors are registered once at init via promauto and shared by the
// HTTP middleware, the summarize usecase and the persistence layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

/* ───────── HTTP ───────── */

var (
	// HTTPRequestsTotal counts requests by method, normalized path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency. Generation requests
	// dominate the upper buckets.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize tracks submitted body sizes. Documents span a few
	// hundred bytes to megabytes, hence the exponential buckets.
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize tracks response body sizes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// ActiveConnections tracks in-flight HTTP requests.
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

/* ───────── summarization ───────── */

var (
	// SummariesCreatedTotal counts generation attempts by style and outcome.
	SummariesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_created_total",
			Help: "Total number of summaries generated",
		},
		[]string{"style", "status"},
	)

	// SummaryQualityScore tracks the rubric score distribution. The bucket
	// edges mirror the score bands used when reviewing summary quality.
	SummaryQualityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_quality_score",
			Help:    "Distribution of summary quality scores (0-100)",
			Buckets: []float64{20, 40, 60, 80, 90, 100},
		},
	)

	// DocumentWordsProcessed tracks source document sizes in words.
	DocumentWordsProcessed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_words_processed",
			Help:    "Word count of documents submitted for summarization",
			Buckets: prometheus.ExponentialBuckets(50, 2, 12),
		},
	)

	// SummariesDeletedTotal counts removals by reason (user_request, purge).
	SummariesDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_deleted_total",
			Help: "Total number of summaries deleted",
		},
		[]string{"reason"},
	)

	// ArchiveWritesTotal counts archive file writes by result (success, failure).
	ArchiveWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archive_writes_total",
			Help: "Total number of summary archive file writes",
		},
		[]string{"result"},
	)
)

/* ───────── database ───────── */

var (
	// DBQueryDuration measures summary store query latency per operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks connections currently in use.
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle pooled connections.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest updates the request counter and the latency and size
// histograms for one completed request. Zero sizes are skipped so GET
// requests do not pollute the request size distribution.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordOperationDuration feeds the per-operation query histogram.
func RecordOperationDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
