package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docbrief/internal/repository"
)

func TestGetHandler_Success(t *testing.T) {
	repo := &stubRepo{}
	repo.records = append(repo.records, testRecord(7, "alice"))
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/summaries/7", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var dto struct {
		ID           int64  `json:"id"`
		UserID       string `json:"user_id"`
		SummaryStyle string `json:"summary_style"`
		QualityScore *int   `json:"quality_score"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.ID != 7 || dto.UserID != "alice" {
		t.Errorf("got id=%d user=%q, want 7/alice", dto.ID, dto.UserID)
	}
	if dto.SummaryStyle != "bullet" {
		t.Errorf("style = %q, want bullet", dto.SummaryStyle)
	}
	if dto.QualityScore == nil || *dto.QualityScore != 85 {
		t.Errorf("quality_score = %v, want 85", dto.QualityScore)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/summaries/99", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/summaries/abc", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestListHandler_Success(t *testing.T) {
	repo := &stubRepo{}
	repo.records = append(repo.records, testRecord(1, "alice"), testRecord(2, "alice"), testRecord(3, "bob"))
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries?limit=10", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summaries []json.RawMessage `json:"summaries"`
		Limit     int               `json:"limit"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Summaries) != 2 {
		t.Errorf("got %d summaries, want 2 (owner scoped)", len(resp.Summaries))
	}
	if resp.Limit != 10 {
		t.Errorf("limit = %d, want 10", resp.Limit)
	}
}

func TestListHandler_LimitClamped(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries?limit=5000", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}

	var resp struct {
		Limit int `json:"limit"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Limit != 100 {
		t.Errorf("limit = %d, want clamped to 100", resp.Limit)
	}
}

func TestSearchHandler_Success(t *testing.T) {
	repo := &stubRepo{}
	repo.records = append(repo.records, testRecord(1, "alice"))
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries/search?q=budget", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summaries []json.RawMessage `json:"summaries"`
		Query     string            `json:"query"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Query != "budget" {
		t.Errorf("query = %q, want budget", resp.Query)
	}
	if len(resp.Summaries) != 1 {
		t.Errorf("got %d summaries, want 1", len(resp.Summaries))
	}
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries/search", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestRecentHandler_Success(t *testing.T) {
	repo := &stubRepo{}
	repo.records = append(repo.records, testRecord(1, "alice"))
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries/recent?days=30", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Days != 30 {
		t.Errorf("days = %d, want 30", resp.Days)
	}
}

func TestRecentHandler_NegativeDays(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries/recent?days=-3", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestStatisticsHandler_Success(t *testing.T) {
	repo := &stubRepo{stats: &repository.Statistics{
		TotalSummaries:      4,
		TotalDocuments:      3,
		AverageQualityScore: 80.0,
		FavoriteStyle:       "bullet",
		TotalWordsProcessed: 1600,
	}}
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/users/alice/summaries/statistics", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalSummaries      int64   `json:"total_summaries"`
		AverageQualityScore float64 `json:"average_quality_score"`
		FavoriteStyle       string  `json:"favorite_style"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalSummaries != 4 {
		t.Errorf("total_summaries = %d, want 4", resp.TotalSummaries)
	}
	if resp.AverageQualityScore != 80.0 {
		t.Errorf("average_quality_score = %v, want 80", resp.AverageQualityScore)
	}
	if resp.FavoriteStyle != "bullet" {
		t.Errorf("favorite_style = %q, want bullet", resp.FavoriteStyle)
	}
}

func TestStatisticsHandler_EmptyUser(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/users/nobody/summaries/statistics", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}

	var resp struct {
		FavoriteStyle string `json:"favorite_style"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.FavoriteStyle != "None" {
		t.Errorf("favorite_style = %q, want None", resp.FavoriteStyle)
	}
}
