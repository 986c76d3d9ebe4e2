package summary

import (
	"net/http"

	"docbrief/internal/handler/http/respond"
	sumUC "docbrief/internal/usecase/summarize"
)

// StatisticsHandler aggregates a user's stored records: totals, average
// quality, favorite style, and total words processed.
type StatisticsHandler struct{ Svc *sumUC.Service }

func (h StatisticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	stats, err := h.Svc.Statistics(r.Context(), userID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"total_summaries":       stats.TotalSummaries,
		"total_documents":       stats.TotalDocuments,
		"average_quality_score": stats.AverageQualityScore,
		"favorite_style":        stats.FavoriteStyle,
		"total_words_processed": stats.TotalWordsProcessed,
	})
}
