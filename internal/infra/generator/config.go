package generator

import (
	"fmt"
	"time"
)

// Generation parameters shared by every provider. Conservative sampling
// keeps summaries factual rather than creative.
const (
	defaultTemperature     = 0.3
	defaultTopP            = 0.8
	defaultTopK            = 40
	defaultMaxOutputTokens = 2048
)

// maxInputChars caps the document text sent to a provider. Long documents
// are truncated server-side rather than rejected.
const maxInputChars = 30000

// Config holds provider-independent generator configuration.
type Config struct {
	// Provider selects the backing AI service: "gemini", "claude",
	// "openai", or "noop".
	Provider string

	// APIKey authenticates against the selected provider. Unused by noop.
	APIKey string

	// Model overrides the provider's default model when non-empty.
	Model string

	// Timeout is the maximum duration for a single generation API call.
	Timeout time.Duration
}

// Validate checks the configuration for the selected provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderClaude, ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("provider %q requires an API key", c.Provider)
		}
	case ProviderNoop:
		// No credentials needed.
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 60 * time.Second
}
