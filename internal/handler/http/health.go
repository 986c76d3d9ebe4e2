// Package http provides the HTTP surface of the summarization service:
// request handlers, health and probe endpoints, and middleware.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Check statuses. Degraded is a warning, the service keeps accepting
// requests. Unhealthy flips the endpoint to 503.
const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler reports the health of the summary store and, when
// configured, the archive directory.
type HealthHandler struct {
	DB      *sql.DB
	Version string

	// ArchiveDir, when set, is stat-checked as part of the health report.
	ArchiveDir string
}

// ServeHTTP runs all checks and returns 200 when the store is reachable,
// 503 otherwise. Archive problems only degrade the report since archiving
// failures never fail summarization requests either.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.DB != nil {
		dbCheck := h.checkDatabase(ctx)
		checks["database"] = dbCheck
		if dbCheck.Status == statusUnhealthy {
			allHealthy = false
		}
	} else {
		checks["database"] = CheckStatus{
			Status:  statusUnhealthy,
			Message: "not configured",
		}
		allHealthy = false
	}

	if h.ArchiveDir != "" {
		checks["archive"] = h.checkArchive()
	}

	status := statusHealthy
	statusCode := http.StatusOK
	if !allHealthy {
		status = statusUnhealthy
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("health: encode response", slog.Any("error", err))
	}
}

// checkDatabase pings the summary store and inspects connection pool
// pressure. Utilization at or above 80% degrades the check.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  statusUnhealthy,
			Message: err.Error(),
		}
	}

	stats := h.DB.Stats()
	details := map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_idle_time_closed": stats.MaxIdleTimeClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}

	// MaxOpenConnections=0 は無制限設定でゼロ除算になるため別扱い
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization

	if utilization >= 80.0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{
		Status:  statusHealthy,
		Details: details,
	}
}

// checkArchive reports whether the archive directory is usable.
func (h *HealthHandler) checkArchive() CheckStatus {
	info, err := os.Stat(h.ArchiveDir)
	if err != nil {
		return CheckStatus{
			Status:  statusDegraded,
			Message: err.Error(),
		}
	}
	if !info.IsDir() {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "archive path is not a directory",
		}
	}
	return CheckStatus{
		Status:  statusHealthy,
		Details: map[string]interface{}{"dir": h.ArchiveDir},
	}
}

// ReadyHandler answers readiness probes. Traffic should only be routed
// here once the summary store accepts connections.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Error("ready: write response", slog.Any("error", err))
	}
}

// LiveHandler answers liveness probes. It only proves the process can
// still serve a request.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Error("alive: write response", slog.Any("error", err))
	}
}
