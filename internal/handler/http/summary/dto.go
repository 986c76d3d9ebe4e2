// Package summary provides HTTP handlers for summarization endpoints.
// It includes handlers for generating summaries, persisting them, and
// querying a user's summary history.
package summary

import (
	"errors"
	"net/http"
	"time"

	"docbrief/internal/domain/entity"
	"docbrief/internal/usecase/summarize"
)

// DTO represents the JSON structure for a persisted summary record.
type DTO struct {
	ID              int64     `json:"id" example:"1"`
	UserID          string    `json:"user_id" example:"alice"`
	DocumentName    string    `json:"document_name" example:"q3-report.txt"`
	DocumentType    string    `json:"document_type,omitempty" example:"txt"`
	OriginalExcerpt string    `json:"original_excerpt,omitempty"`
	SummaryText     string    `json:"summary_text"`
	SummaryStyle    string    `json:"summary_style" example:"bullet"`
	QualityScore    *int      `json:"quality_score"`
	CreatedAt       time.Time `json:"created_at" example:"2026-08-01T12:00:00Z"`

	FileSizeBytes         *int64   `json:"file_size_bytes,omitempty"`
	ProcessingTimeSeconds *float64 `json:"processing_time_seconds,omitempty"`
	SourceWordCount       *int     `json:"source_word_count,omitempty"`
	SummaryWordCount      *int     `json:"summary_word_count,omitempty"`
}

// toDTO converts a domain record into its transport representation.
func toDTO(r *entity.SummaryRecord) DTO {
	return DTO{
		ID:              r.ID,
		UserID:          r.UserID,
		DocumentName:    r.DocumentName,
		DocumentType:    r.DocumentType,
		OriginalExcerpt: r.OriginalExcerpt,
		SummaryText:     r.SummaryText,
		SummaryStyle:    string(r.SummaryStyle),
		QualityScore:    r.QualityScore,
		CreatedAt:       r.CreatedAt,

		FileSizeBytes:         r.FileSizeBytes,
		ProcessingTimeSeconds: r.ProcessingTimeSeconds,
		SourceWordCount:       r.SourceWordCount,
		SummaryWordCount:      r.SummaryWordCount,
	}
}

// toDTOs converts a slice of domain records.
func toDTOs(records []*entity.SummaryRecord) []DTO {
	out := make([]DTO, 0, len(records))
	for _, r := range records {
		out = append(out, toDTO(r))
	}
	return out
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	var vErr *entity.ValidationError
	var gErr *summarize.GenerationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, summarize.ErrEmptyInput),
		errors.Is(err, summarize.ErrInvalidLimit),
		errors.Is(err, summarize.ErrInvalidDays):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &gErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
