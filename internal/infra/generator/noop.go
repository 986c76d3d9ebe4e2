package generator

import (
	"context"
	"strings"
)

// Noop is a generator that produces a placeholder summary without calling
// any external service. Useful for development and tests where no API key
// is available.
type Noop struct{}

// NewNoop creates a new Noop generator.
func NewNoop() *Noop {
	return &Noop{}
}

// Generate returns the tail of the prompt truncated to a summary-sized
// chunk. The prompt ends with the document text, so this approximates an
// extractive summary well enough for local development.
func (n *Noop) Generate(_ context.Context, prompt string) (string, error) {
	const maxWords = 80

	words := strings.Fields(prompt)
	if len(words) > maxWords {
		words = words[len(words)-maxWords:]
	}
	return strings.Join(words, " "), nil
}
