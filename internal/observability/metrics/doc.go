// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (summaries, quality scores, purges)
//   - Database query metrics
//   - Application performance metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "docbrief/internal/observability/metrics"
//
//	func summarizeDocument(style string) {
//	    start := time.Now()
//	    // ... generate and store summary ...
//
//	    metrics.RecordSummaryCreated(style, true)
//	    metrics.RecordOperationDuration("summarize_document", time.Since(start))
//	}
package metrics
