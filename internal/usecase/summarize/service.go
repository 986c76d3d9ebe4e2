package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"docbrief/internal/domain/entity"
	"docbrief/internal/observability/logging"
	"docbrief/internal/repository"
	"docbrief/internal/utils/text"
)

// defaultGenerationTimeout bounds a single external generation call.
const defaultGenerationTimeout = 120 * time.Second

// Service orchestrates the summarization pipeline: normalization, prompt
// construction, generation, quality evaluation, and persistence. It is
// stateless between requests; the repository is the only shared state.
type Service struct {
	generator Generator
	repo      repository.SummaryRepository
	archiver  Archiver
	logger    *slog.Logger
	timeout   time.Duration
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithArchiver adds plain-text archiving of saved summaries.
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithGenerationTimeout overrides the per-request generation timeout.
func WithGenerationTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a summarization service. All collaborators are injected;
// the service holds no ambient global state.
func NewService(gen Generator, repo repository.SummaryRepository, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		generator: gen,
		repo:      repo,
		logger:    logger,
		timeout:   defaultGenerationTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunInput carries one summarization request.
type RunInput struct {
	Text         string
	Style        entity.Style
	UserID       string
	DocumentName string
	DocumentType string
	// FileSizeBytes is nil when the text was pasted rather than uploaded.
	FileSizeBytes *int64
}

// Outcome is the caller-facing result of one unit of work. Success means a
// summary was produced; persistence or archive failures degrade to Warning
// with SummaryID left nil.
type Outcome struct {
	Summary               string
	SummaryID             *int64
	ArchivePath           string
	Quality               *QualityReport
	ProcessingTimeSeconds float64
	WordCount             int
	SummaryWordCount      int
	Warning               string
}

// Generate runs the front half of the pipeline without persisting anything:
// normalize, reject empty input, build the style prompt, call the provider.
// Returns the trimmed model output verbatim.
func (s *Service) Generate(ctx context.Context, raw string, style entity.Style) (string, error) {
	normalized := text.Normalize(raw)
	if normalized == "" {
		return "", ErrEmptyInput
	}

	prompt := BuildPrompt(normalized, style)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", &GenerationError{Err: errors.New("generator returned no usable text")}
	}
	return summary, nil
}

// Run executes one full summarization unit of work. Generation failures abort
// the request with nothing persisted. After a successful generation the
// summary is scored, saved, and archived; save and archive failures are
// reported as warnings on a successful outcome.
func (s *Service) Run(ctx context.Context, in RunInput) (*Outcome, error) {
	// HTTP経由なら requestid ミドルウェアの ID、それ以外は新規生成
	logger := logging.WithRequestID(ctx, s.logger)
	if logger == s.logger {
		logger = s.logger.With(slog.String("request_id", uuid.New().String()))
	}

	if err := entity.ValidateUserID(in.UserID); err != nil {
		return nil, err
	}
	style := in.Style
	if style == "" {
		style = entity.StyleBullet
	}
	if err := entity.ValidateStyle(style); err != nil {
		return nil, err
	}
	if err := entity.ValidateDocumentName(in.DocumentName); err != nil {
		return nil, err
	}

	start := time.Now()

	logger.InfoContext(ctx, "Starting summarization request",
		slog.String("user_id", in.UserID),
		slog.String("style", string(style)),
		slog.String("document", in.DocumentName),
		slog.Int("input_bytes", len(in.Text)))

	summary, err := s.Generate(ctx, in.Text, style)
	if err != nil {
		logger.ErrorContext(ctx, "Summarization failed",
			slog.String("user_id", in.UserID),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err))
		return nil, err
	}

	report := EvaluateQuality(in.Text, summary)
	processing := roundSeconds(time.Since(start))

	outcome := &Outcome{
		Summary:               summary,
		Quality:               report,
		ProcessingTimeSeconds: processing,
		WordCount:             report.OriginalWordCount,
		SummaryWordCount:      report.SummaryWordCount,
	}

	record := &entity.SummaryRecord{
		UserID:                in.UserID,
		DocumentName:          in.DocumentName,
		DocumentType:          in.DocumentType,
		OriginalExcerpt:       entity.Excerpt(in.Text),
		SummaryText:           summary,
		SummaryStyle:          style,
		FileSizeBytes:         in.FileSizeBytes,
		ProcessingTimeSeconds: &processing,
		SourceWordCount:       &report.OriginalWordCount,
		SummaryWordCount:      &report.SummaryWordCount,
	}
	if report.Rating != RatingError {
		score := report.Score
		record.QualityScore = &score
	}

	id, err := s.repo.Save(ctx, record)
	if err != nil {
		outcome.Warning = fmt.Sprintf("summary generated but could not be saved: %v", err)
		logger.ErrorContext(ctx, "Summary persistence failed",
			slog.String("user_id", in.UserID),
			slog.Any("error", err))
	} else {
		outcome.SummaryID = &id
	}

	if s.archiver != nil {
		path, archiveErr := s.archiver.Write(in.UserID, in.DocumentName, style, summary, start)
		if archiveErr != nil {
			if outcome.Warning != "" {
				outcome.Warning += "; "
			}
			outcome.Warning += fmt.Sprintf("archive write failed: %v", archiveErr)
			logger.WarnContext(ctx, "Summary archive failed",
				slog.String("user_id", in.UserID),
				slog.Any("error", archiveErr))
		} else {
			outcome.ArchivePath = path
		}
	}

	logger.InfoContext(ctx, "Summarization completed",
		slog.String("user_id", in.UserID),
		slog.Int("quality_score", report.Score),
		slog.String("rating", report.Rating),
		slog.Float64("processing_seconds", processing),
		slog.Bool("persisted", outcome.SummaryID != nil))

	return outcome, nil
}

// History returns a user's summaries, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]*entity.SummaryRecord, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if offset < 0 {
		offset = 0
	}
	records, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return records, nil
}

// Get returns a single record by id.
// Returns entity.ErrNotFound when no record has that id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.SummaryRecord, error) {
	if id <= 0 {
		return nil, entity.ErrInvalidInput
	}
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	if record == nil {
		return nil, entity.ErrNotFound
	}
	return record, nil
}

// Search finds a user's summaries whose document name, summary text, or
// stored excerpt contains the query substring.
func (s *Service) Search(ctx context.Context, userID, query string, limit int) ([]*entity.SummaryRecord, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	records, err := s.repo.Search(ctx, userID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search summaries: %w", err)
	}
	return records, nil
}

// Delete removes a record when both id and owner match. Returns whether a
// record was removed; a wrong owner reports false, never an error.
func (s *Service) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	if id <= 0 {
		return false, entity.ErrInvalidInput
	}
	if err := entity.ValidateUserID(userID); err != nil {
		return false, err
	}
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete summary: %w", err)
	}
	return deleted, nil
}

// UpdateSummary replaces the text of an owned record. When rescore is true
// the new text is re-evaluated against the stored excerpt and the fresh
// score persisted with it.
func (s *Service) UpdateSummary(ctx context.Context, id int64, userID, newText string, rescore bool) (bool, error) {
	if id <= 0 {
		return false, entity.ErrInvalidInput
	}
	if err := entity.ValidateUserID(userID); err != nil {
		return false, err
	}
	if newText == "" {
		return false, &entity.ValidationError{Field: "summary_text", Message: "is required"}
	}

	var score *int
	if rescore {
		record, err := s.repo.Get(ctx, id)
		if err != nil {
			return false, fmt.Errorf("get summary for rescore: %w", err)
		}
		if record != nil {
			report := EvaluateQuality(record.OriginalExcerpt, newText)
			if report.Rating != RatingError {
				score = &report.Score
			}
		}
	}

	updated, err := s.repo.UpdateSummary(ctx, id, userID, newText, score)
	if err != nil {
		return false, fmt.Errorf("update summary: %w", err)
	}
	return updated, nil
}

// Statistics aggregates a user's stored records. A user with no records gets
// zero counts and favorite style "None".
func (s *Service) Statistics(ctx context.Context, userID string) (*repository.Statistics, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	stats, err := s.repo.Statistics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary statistics: %w", err)
	}
	return stats, nil
}

// Recent returns the user's records created within the last N days.
func (s *Service) Recent(ctx context.Context, userID string, days int) ([]*entity.SummaryRecord, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	records, err := s.repo.Recent(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("recent summaries: %w", err)
	}
	return records, nil
}

// Purge removes the user's records older than N days and returns the count.
func (s *Service) Purge(ctx context.Context, userID string, days int) (int64, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return 0, err
	}
	if days <= 0 {
		return 0, ErrInvalidDays
	}
	removed, err := s.repo.PurgeOlderThan(ctx, userID, days)
	if err != nil {
		return 0, fmt.Errorf("purge summaries: %w", err)
	}
	s.logger.InfoContext(ctx, "Retention sweep completed",
		slog.String("user_id", userID),
		slog.Int("days", days),
		slog.Int64("removed", removed))
	return removed, nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
