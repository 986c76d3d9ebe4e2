package summarize

import (
	"context"
	"time"

	"docbrief/internal/domain/entity"
)

// Generator is the port to the external generative text capability.
// Implementations live under internal/infra/generator and carry their own
// decoding parameters, retry, and circuit breaking. Generate blocks on the
// network and must honor ctx cancellation; it returns the raw model output
// or an error distinguishing safety-block, quota, and transient causes
// through its message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Archiver writes a plain-text copy of a summary outside the record store.
// Implementations return the path written. Archive failures never fail a
// request; the service degrades them to a warning.
type Archiver interface {
	Write(userID, documentName string, style entity.Style, summary string, at time.Time) (string, error)
}
