package summary

import (
	"net/http"

	sumUC "docbrief/internal/usecase/summarize"
)

// Register registers all summarization HTTP handlers with the given mux.
// It sets up routes for generating, persisting, and querying summaries.
func Register(mux *http.ServeMux, svc *sumUC.Service) {
	mux.Handle("POST   /summarize", GenerateHandler{svc})
	mux.Handle("POST   /summaries", CreateHandler{svc})
	mux.Handle("GET    /summaries/", GetHandler{svc})
	mux.Handle("PUT    /summaries/", UpdateHandler{svc})
	mux.Handle("DELETE /summaries/", DeleteHandler{svc})

	mux.Handle("GET    /users/{user_id}/summaries", ListHandler{svc})
	mux.Handle("GET    /users/{user_id}/summaries/search", SearchHandler{svc})
	mux.Handle("GET    /users/{user_id}/summaries/recent", RecentHandler{svc})
	mux.Handle("GET    /users/{user_id}/summaries/statistics", StatisticsHandler{svc})
	mux.Handle("DELETE /users/{user_id}/summaries", PurgeHandler{svc})

	mux.Handle("GET    /styles", StylesHandler{})
}
