// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as SummaryRecord and Style, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// ExcerptLimit is the maximum number of characters of source text retained
// alongside a summary. The full source text is never persisted.
const ExcerptLimit = 1000

// SummaryRecord represents one persisted summarization result with its metadata.
// Records are immutable after insert except for the explicit update-summary
// operation, which replaces the text and score and refreshes CreatedAt.
type SummaryRecord struct {
	ID              int64
	UserID          string
	DocumentName    string
	DocumentType    string
	OriginalExcerpt string
	SummaryText     string
	SummaryStyle    Style
	// QualityScore is nil when evaluation failed for this record.
	QualityScore *int
	CreatedAt    time.Time

	// Optional numeric metadata, nil when not supplied by the caller.
	FileSizeBytes         *int64
	ProcessingTimeSeconds *float64
	SourceWordCount       *int
	SummaryWordCount      *int
}

// Excerpt returns the first ExcerptLimit characters of raw text.
// The cut is rune-based so multi-byte characters are never split.
func Excerpt(raw string) string {
	runes := []rune(raw)
	if len(runes) <= ExcerptLimit {
		return raw
	}
	return string(runes[:ExcerptLimit])
}
