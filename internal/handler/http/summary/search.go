package summary

import (
	"errors"
	"net/http"

	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// defaultSearchLimit caps result sets when the caller does not specify one.
const defaultSearchLimit = 20

// SearchHandler finds a user's summaries whose document name, summary text,
// or stored excerpt contains the query substring (case-insensitive).
type SearchHandler struct{ Svc *sumUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	query := r.URL.Query().Get("q")
	if query == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("q is required"))
		return
	}

	limit := queryInt(r, "limit", defaultSearchLimit)
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := h.Svc.Search(r.Context(), userID, query, limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"summaries": toDTOs(records),
		"query":     query,
	})
}
