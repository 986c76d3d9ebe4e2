package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"docbrief/internal/handler/http/pathutil"
	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// UpdateHandler replaces the text of an owned summary record.
// When rescore is true the new text is re-evaluated against the stored
// excerpt and the fresh score persisted with it.
type UpdateHandler struct{ Svc *sumUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/summaries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		UserID      string `json:"user_id"`
		SummaryText string `json:"summary_text"`
		Rescore     bool   `json:"rescore"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.UserID == "" || req.SummaryText == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("user_id, summary_text are required"))
		return
	}

	updated, err := h.Svc.UpdateSummary(r.Context(), id, req.UserID, req.SummaryText, req.Rescore)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if !updated {
		respond.SafeError(w, http.StatusNotFound, errors.New("summary not found"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
