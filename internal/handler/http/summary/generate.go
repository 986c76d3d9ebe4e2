package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"docbrief/internal/domain/entity"
	"docbrief/internal/handler/http/respond"
	"docbrief/internal/observability/metrics"
	sumUC "docbrief/internal/usecase/summarize"
)

// GenerateHandler produces a summary without persisting anything.
// It runs the front half of the pipeline only: normalize, prompt, generate.
type GenerateHandler struct{ Svc *sumUC.Service }

func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Style string `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	style := entity.Style(req.Style)
	if style == "" {
		style = entity.StyleBullet
	}
	if err := entity.ValidateStyle(style); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	text, err := h.Svc.Generate(r.Context(), req.Text, style)
	if err != nil {
		metrics.RecordSummaryCreated(string(style), false)
		writeGenerationError(w, err)
		return
	}
	metrics.RecordSummaryCreated(string(style), true)

	respond.JSON(w, http.StatusOK, map[string]string{
		"summary": text,
		"style":   string(style),
	})
}

// writeGenerationError surfaces pipeline errors with a stable message.
// Empty input is user-correctable and returned verbatim; provider failures
// are reported as a bad gateway without leaking upstream detail.
func writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, sumUC.ErrEmptyInput) {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	var gErr *sumUC.GenerationError
	if errors.As(err, &gErr) {
		respond.Error(w, http.StatusBadGateway, errors.New("summary generation failed"))
		return
	}
	respond.SafeError(w, statusFor(err), err)
}
