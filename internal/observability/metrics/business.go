package metrics

import "time"

// RecordSummaryCreated records a summarization attempt.
// Status is derived from success: "success" or "failure".
func RecordSummaryCreated(style string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	SummariesCreatedTotal.WithLabelValues(style, status).Inc()
}

// RecordQualityScore records the quality score of a generated summary.
func RecordQualityScore(score int) {
	SummaryQualityScore.Observe(float64(score))
}

// RecordDocumentWords records the source word count of a summarized document.
func RecordDocumentWords(words int) {
	DocumentWordsProcessed.Observe(float64(words))
}

// RecordSummaryDeleted records a single user-requested deletion.
func RecordSummaryDeleted() {
	SummariesDeletedTotal.WithLabelValues("user_request").Inc()
}

// RecordSummariesPurged records a batch of retention purges.
func RecordSummariesPurged(count int64) {
	if count <= 0 {
		return
	}
	SummariesDeletedTotal.WithLabelValues("purge").Add(float64(count))
}

// RecordArchiveWrite records an archive file write result.
func RecordArchiveWrite(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	ArchiveWritesTotal.WithLabelValues(result).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "save_summary", "list_summaries").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
