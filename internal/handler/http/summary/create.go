package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"docbrief/internal/domain/entity"
	"docbrief/internal/handler/http/respond"
	"docbrief/internal/observability/metrics"
	sumUC "docbrief/internal/usecase/summarize"
)

// CreateHandler runs the full summarization pipeline and persists the result.
// Generation failure aborts the request; persistence or archive failures
// degrade to a warning field on a successful response.
type CreateHandler struct{ Svc *sumUC.Service }

// outcomeDTO is the response body for a completed summarization.
type outcomeDTO struct {
	Summary               string                `json:"summary"`
	SummaryID             *int64                `json:"summary_id"`
	ArchivePath           string                `json:"archive_path,omitempty"`
	Quality               *sumUC.QualityReport  `json:"quality,omitempty"`
	ProcessingTimeSeconds float64               `json:"processing_time_seconds"`
	WordCount             int                   `json:"word_count"`
	SummaryWordCount      int                   `json:"summary_word_count"`
	Warning               string                `json:"warning,omitempty"`
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text          string `json:"text"`
		Style         string `json:"style"`
		UserID        string `json:"user_id"`
		DocumentName  string `json:"document_name"`
		DocumentType  string `json:"document_type"`
		FileSizeBytes *int64 `json:"file_size_bytes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" || req.UserID == "" || req.DocumentName == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("text, user_id, document_name are required"))
		return
	}

	style := entity.Style(req.Style)

	outcome, err := h.Svc.Run(r.Context(), sumUC.RunInput{
		Text:          req.Text,
		Style:         style,
		UserID:        req.UserID,
		DocumentName:  req.DocumentName,
		DocumentType:  req.DocumentType,
		FileSizeBytes: req.FileSizeBytes,
	})
	if err != nil {
		metrics.RecordSummaryCreated(string(style), false)
		writeGenerationError(w, err)
		return
	}

	metrics.RecordSummaryCreated(string(style), true)
	metrics.RecordDocumentWords(outcome.WordCount)
	if outcome.Quality != nil {
		metrics.RecordQualityScore(outcome.Quality.Score)
	}
	if outcome.ArchivePath != "" {
		metrics.RecordArchiveWrite(true)
	} else if strings.Contains(outcome.Warning, "archive") {
		metrics.RecordArchiveWrite(false)
	}

	respond.JSON(w, http.StatusCreated, outcomeDTO{
		Summary:               outcome.Summary,
		SummaryID:             outcome.SummaryID,
		ArchivePath:           outcome.ArchivePath,
		Quality:               outcome.Quality,
		ProcessingTimeSeconds: outcome.ProcessingTimeSeconds,
		WordCount:             outcome.WordCount,
		SummaryWordCount:      outcome.SummaryWordCount,
		Warning:               outcome.Warning,
	})
}
