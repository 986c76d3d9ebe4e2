package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDeleteHandler_Success(t *testing.T) {
	repo := &stubRepo{deleted: true}
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/summaries/7?user_id=alice", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204; body=%s", rec.Code, rec.Body.String())
	}
	if repo.deletedID != 7 {
		t.Errorf("deleted id = %d, want 7", repo.deletedID)
	}
}

func TestDeleteHandler_WrongOwner(t *testing.T) {
	// Repository reports false for a non-matching owner; handler maps it to 404
	repo := &stubRepo{deleted: false}
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/summaries/7?user_id=mallory", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestDeleteHandler_MissingUserID(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{deleted: true})

	req := httptest.NewRequest(http.MethodDelete, "/summaries/7", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestUpdateHandler_Success(t *testing.T) {
	repo := &stubRepo{updated: true}
	mux := newTestMux(t, &stubGenerator{}, repo)

	body := `{"user_id":"alice","summary_text":"- Revised summary"}`
	req := httptest.NewRequest(http.MethodPut, "/summaries/7", strings.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204; body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	repo := &stubRepo{updated: false}
	mux := newTestMux(t, &stubGenerator{}, repo)

	body := `{"user_id":"alice","summary_text":"- Revised summary"}`
	req := httptest.NewRequest(http.MethodPut, "/summaries/99", strings.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestUpdateHandler_MissingFields(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{updated: true})

	req := httptest.NewRequest(http.MethodPut, "/summaries/7", strings.NewReader(`{"user_id":"alice"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestPurgeHandler_Success(t *testing.T) {
	repo := &stubRepo{purged: 3}
	mux := newTestMux(t, &stubGenerator{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/users/alice/summaries?older_than_days=90", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Removed       int64 `json:"removed"`
		OlderThanDays int   `json:"older_than_days"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Removed != 3 {
		t.Errorf("removed = %d, want 3", resp.Removed)
	}
	if resp.OlderThanDays != 90 {
		t.Errorf("older_than_days = %d, want 90", resp.OlderThanDays)
	}
}

func TestPurgeHandler_MissingDays(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{purged: 3})

	// A bare DELETE without older_than_days must not purge anything
	req := httptest.NewRequest(http.MethodDelete, "/users/alice/summaries", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestPurgeHandler_NonPositiveDays(t *testing.T) {
	mux := newTestMux(t, &stubGenerator{}, &stubRepo{purged: 3})

	req := httptest.NewRequest(http.MethodDelete, "/users/alice/summaries?older_than_days=0", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}
