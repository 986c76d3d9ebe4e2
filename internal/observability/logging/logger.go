// Package logging builds the slog loggers used across the service and ties
// log lines to request IDs.
package logging

import (
	"context"
	"log/slog"
	"os"

	"docbrief/internal/handler/http/requestid"
)

// levelFromEnv maps LOG_LEVEL to a slog level, defaulting to info.
func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON logger on stdout. The level comes from the
// LOG_LEVEL environment variable (debug, info, warn, error). Source
// locations are attached when running at debug level.
func NewLogger() *slog.Logger {
	level := levelFromEnv()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
}

// NewTextLogger returns a human-readable text logger for local runs.
// Selected in main via LOG_FORMAT=text.
func NewTextLogger() *slog.Logger {
	level := levelFromEnv()
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
}

// WithRequestID returns logger annotated with the request ID carried by
// ctx. When ctx has no request ID the logger is returned unchanged, so
// callers can compare against the input to detect that case.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
