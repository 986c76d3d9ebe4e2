package summary

import (
	"net/http"

	"docbrief/internal/handler/http/pathutil"
	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// GetHandler returns a single summary record by id.
type GetHandler struct{ Svc *sumUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/summaries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(record))
}
