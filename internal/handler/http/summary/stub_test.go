package summary_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"docbrief/internal/domain/entity"
	"docbrief/internal/handler/http/summary"
	"docbrief/internal/repository"
	sumUC "docbrief/internal/usecase/summarize"
)

/* ───────── モック実装 ───────── */

// stubGenerator returns a canned summary or error.
type stubGenerator struct {
	output string
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

// stubRepo is a configurable in-memory stand-in for the summary repository.
type stubRepo struct {
	records []*entity.SummaryRecord
	stats   *repository.Statistics

	saveID  int64
	saveErr error

	deleted    bool
	deletedID  int64
	deleteErr  error
	updated    bool
	updateErr  error
	purged     int64
	purgeErr   error
	listErr    error
	getErr     error
	searchErr  error
	statsErr   error
	recentErr  error
}

func (s *stubRepo) Save(_ context.Context, record *entity.SummaryRecord) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	record.ID = s.saveID
	record.CreatedAt = time.Now().UTC()
	s.records = append(s.records, record)
	return s.saveID, nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.SummaryRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.forUser(userID), nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.SummaryRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Search(_ context.Context, userID, _ string, _ int) ([]*entity.SummaryRecord, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.forUser(userID), nil
}

func (s *stubRepo) Delete(_ context.Context, id int64, _ string) (bool, error) {
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	if s.deleted {
		s.deletedID = id
	}
	return s.deleted, nil
}

func (s *stubRepo) UpdateSummary(_ context.Context, _ int64, _, _ string, _ *int) (bool, error) {
	if s.updateErr != nil {
		return false, s.updateErr
	}
	return s.updated, nil
}

func (s *stubRepo) Statistics(_ context.Context, _ string) (*repository.Statistics, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	if s.stats != nil {
		return s.stats, nil
	}
	return &repository.Statistics{FavoriteStyle: "None"}, nil
}

func (s *stubRepo) Recent(_ context.Context, userID string, _ int) ([]*entity.SummaryRecord, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	return s.forUser(userID), nil
}

func (s *stubRepo) PurgeOlderThan(_ context.Context, _ string, _ int) (int64, error) {
	if s.purgeErr != nil {
		return 0, s.purgeErr
	}
	return s.purged, nil
}

func (s *stubRepo) forUser(userID string) []*entity.SummaryRecord {
	var out []*entity.SummaryRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

/* ───────── ヘルパー ───────── */

func newTestMux(t *testing.T, gen *stubGenerator, repo *stubRepo) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := sumUC.NewService(gen, repo, logger)
	mux := http.NewServeMux()
	summary.Register(mux, svc)
	return mux
}

func testRecord(id int64, userID string) *entity.SummaryRecord {
	score := 85
	return &entity.SummaryRecord{
		ID:              id,
		UserID:          userID,
		DocumentName:    "q3-report.txt",
		DocumentType:    "txt",
		OriginalExcerpt: "The quarterly budget grew by ten percent.",
		SummaryText:     "- Budget grew 10%",
		SummaryStyle:    entity.StyleBullet,
		QualityScore:    &score,
		CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}
