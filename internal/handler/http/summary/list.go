package summary

import (
	"net/http"
	"strconv"

	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// Default and maximum page sizes for history listings.
const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ListHandler returns a user's summaries, newest first, with limit/offset
// pagination.
type ListHandler struct{ Svc *sumUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	limit := queryInt(r, "limit", defaultListLimit)
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := queryInt(r, "offset", 0)

	records, err := h.Svc.History(r.Context(), userID, limit, offset)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"summaries": toDTOs(records),
		"limit":     limit,
		"offset":    offset,
	})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
