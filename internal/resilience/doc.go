// Package resilience groups the fault tolerance patterns used around
// external dependencies: circuit breakers for the generation providers and
// the summary database, and retry with exponential backoff for transient
// provider failures.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.GeminiAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callProvider()
//	})
//
//	err := retry.WithBackoff(ctx, retry.AIAPIConfig(), func() error {
//	    return performOperation()
//	})
package resilience
