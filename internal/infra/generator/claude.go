package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"docbrief/internal/resilience/circuitbreaker"
	"docbrief/internal/resilience/retry"
	"docbrief/internal/utils/text"
)

const defaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude generates summaries using Anthropic's Messages API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	model           string
	timeout         time.Duration
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	metricsRecorder GenerationMetricsRecorder
}

// NewClaude creates a new Claude generator with the given configuration.
func NewClaude(cfg Config) *Claude {
	model := cfg.Model
	if model == "" {
		model = defaultClaudeModel
	}

	slog.Info("Initialized Claude generator",
		slog.String("model", model),
		slog.Duration("timeout", cfg.timeout()))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:           model,
		timeout:         cfg.timeout(),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		metricsRecorder: NewPrometheusGenerationMetrics(),
	}
}

// Generate produces a summary for the given prompt using Claude.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doGenerate(ctx, prompt)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		c.metricsRecorder.RecordFailure("claude")
		return "", fmt.Errorf("claude generate failed after retries: %w", retryErr)
	}

	return result, nil
}

// doGenerate performs the actual API call without retry or circuit breaker.
func (c *Claude) doGenerate(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.New().String()

	if len(prompt) > maxInputChars {
		slog.Warn("prompt truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(prompt)),
			slog.Int("truncated_length", maxInputChars))
		prompt = prompt[:maxInputChars]
	}

	slog.InfoContext(ctx, "Starting generation",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.String("model", c.model),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   defaultMaxOutputTokens,
		Temperature: anthropic.Float(defaultTemperature),
		TopP:        anthropic.Float(defaultTopP),
		TopK:        anthropic.Int(defaultTopK),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Generation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)

	slog.InfoContext(ctx, "Generation completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration("claude", duration)

	return summary, nil
}
