// Package summarize provides the document summarization use case.
// It orchestrates text normalization, prompt construction, the external
// generation call, quality evaluation, and persistence into one unit of work.
package summarize

import (
	"errors"
	"fmt"
)

// Sentinel errors for summarization use case operations.
var (
	// ErrEmptyInput indicates that no usable text remained after
	// preprocessing. This is user-correctable and surfaced verbatim.
	ErrEmptyInput = errors.New("no text to summarize after preprocessing")

	// ErrInvalidLimit indicates a non-positive limit on a query operation.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidDays indicates a non-positive day window on a query operation.
	ErrInvalidDays = errors.New("days must be positive")
)

// GenerationError wraps a failure of the external generative service.
// It aborts the request; nothing is persisted. The caller may retry by
// re-issuing the request, no automatic retry happens at this layer.
type GenerationError struct {
	Err error
}

// Error returns the upstream failure message.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("summary generation failed: %v", e.Err)
}

// Unwrap returns the underlying provider error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
