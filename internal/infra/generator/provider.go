package generator

import (
	"fmt"

	"docbrief/internal/usecase/summarize"
)

// Supported provider names for Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderNoop   = "noop"
)

// New builds the generator selected by cfg.Provider.
func New(cfg Config) (summarize.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGemini(cfg), nil
	case ProviderClaude:
		return NewClaude(cfg), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case ProviderNoop:
		return NewNoop(), nil
	default:
		return nil, fmt.Errorf("New: unknown provider %q", cfg.Provider)
	}
}
