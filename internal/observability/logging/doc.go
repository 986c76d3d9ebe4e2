// Package logging provides structured logging built on log/slog.
//
// JSON output is the default; LOG_FORMAT=text selects a human-readable
// handler for local runs, and LOG_LEVEL picks the minimum level. Request
// IDs minted by the HTTP layer are attached via WithRequestID so one
// summarization request can be followed across log lines.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	logger.Info("application started", slog.String("version", "1.0"))
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("processing request")
//	}
package logging
