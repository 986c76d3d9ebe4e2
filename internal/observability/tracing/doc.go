// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing via Middleware
//   - W3C trace context propagation across services
//   - Trace ID exposure through the X-Trace-Id response header
//
// Example usage:
//
//	import "docbrief/internal/observability/tracing"
//
//	func main() {
//	    shutdown, err := tracing.InitTracer("docbrief")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
