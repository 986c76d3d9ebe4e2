package summary

import (
	"net/http"

	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// defaultRecentDays is the lookback window when none is specified.
const defaultRecentDays = 7

// RecentHandler returns a user's summaries created within the last N days.
type RecentHandler struct{ Svc *sumUC.Service }

func (h RecentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	days := queryInt(r, "days", defaultRecentDays)

	records, err := h.Svc.Recent(r.Context(), userID, days)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"summaries": toDTOs(records),
		"days":      days,
	})
}
