package summary

import (
	"errors"
	"net/http"

	"docbrief/internal/handler/http/respond"
	"docbrief/internal/observability/metrics"
	sumUC "docbrief/internal/usecase/summarize"
)

// PurgeHandler removes a user's summaries older than the given number of
// days. The older_than_days query parameter is required so that a bare
// DELETE cannot wipe a user's history by accident.
type PurgeHandler struct{ Svc *sumUC.Service }

func (h PurgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	if r.URL.Query().Get("older_than_days") == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("older_than_days is required"))
		return
	}
	days := queryInt(r, "older_than_days", 0)

	removed, err := h.Svc.Purge(r.Context(), userID, days)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	metrics.RecordSummariesPurged(removed)

	respond.JSON(w, http.StatusOK, map[string]any{
		"removed":         removed,
		"older_than_days": days,
	})
}
