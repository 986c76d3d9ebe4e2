package summary

import (
	"errors"
	"net/http"

	"docbrief/internal/handler/http/pathutil"
	"docbrief/internal/handler/http/respond"
	"docbrief/internal/observability/metrics"
	sumUC "docbrief/internal/usecase/summarize"
)

// DeleteHandler removes a summary record owned by the requesting user.
// The record id comes from the path, the owner from the user_id query
// parameter. A wrong owner yields 404, never an error.
type DeleteHandler struct{ Svc *sumUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/summaries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("user_id is required"))
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id, userID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if !deleted {
		respond.SafeError(w, http.StatusNotFound, errors.New("summary not found"))
		return
	}

	metrics.RecordSummaryDeleted()
	w.WriteHeader(http.StatusNoContent)
}
