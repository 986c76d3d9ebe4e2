// Package generator provides AI-backed summary generation implementations.
// It includes adapters for Gemini (Google), Claude (Anthropic) and OpenAI
// APIs with circuit breaker and retry reliability patterns, plus a noop
// implementation for development without credentials.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"docbrief/internal/resilience/circuitbreaker"
	"docbrief/internal/resilience/retry"
	"docbrief/internal/utils/text"
)

const (
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Gemini generates summaries through the Google Generative Language REST
// API. It includes circuit breaker and retry logic for improved reliability.
type Gemini struct {
	apiKey          string
	model           string
	baseURL         string
	httpClient      *http.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	timeout         time.Duration
	metricsRecorder GenerationMetricsRecorder
}

// GeminiOption customizes a Gemini generator.
type GeminiOption func(*Gemini)

// WithGeminiBaseURL overrides the API endpoint, mainly for tests.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(g *Gemini) { g.baseURL = url }
}

// WithGeminiHTTPClient overrides the HTTP client.
func WithGeminiHTTPClient(client *http.Client) GeminiOption {
	return func(g *Gemini) { g.httpClient = client }
}

// NewGemini creates a new Gemini generator with the given configuration.
// It automatically configures circuit breaker, retry logic and metrics
// recording.
func NewGemini(cfg Config, opts ...GeminiOption) *Gemini {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	g := &Gemini{
		apiKey:          cfg.APIKey,
		model:           model,
		baseURL:         defaultGeminiBaseURL,
		httpClient:      &http.Client{Timeout: cfg.timeout()},
		circuitBreaker:  circuitbreaker.New(circuitbreaker.GeminiAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		timeout:         cfg.timeout(),
		metricsRecorder: NewPrometheusGenerationMetrics(),
	}
	for _, opt := range opts {
		opt(g)
	}

	slog.Info("Initialized Gemini generator",
		slog.String("model", g.model),
		slog.Duration("timeout", g.timeout))

	return g
}

// Wire types for the generateContent endpoint.

type geminiRequest struct {
	Contents         []geminiContent       `json:"contents"`
	GenerationConfig geminiGenConfig       `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// safetySettings blocks medium-and-above harmful content in all four
// moderated categories.
func safetySettings() []geminiSafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]geminiSafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, geminiSafetySetting{
			Category:  c,
			Threshold: "BLOCK_MEDIUM_AND_ABOVE",
		})
	}
	return settings
}

// Generate produces a summary for the given prompt using the Gemini API.
// It uses circuit breaker and retry logic for improved reliability.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, g.retryConfig, func() error {
		cbResult, err := g.circuitBreaker.Execute(func() (interface{}, error) {
			return g.doGenerate(ctx, prompt)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("gemini api circuit breaker open, request rejected",
					slog.String("service", "gemini-api"),
					slog.String("state", g.circuitBreaker.State().String()))
				return fmt.Errorf("gemini api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		g.metricsRecorder.RecordFailure("gemini")
		return "", fmt.Errorf("gemini generate failed after retries: %w", retryErr)
	}

	return result, nil
}

// doGenerate performs the actual API call without retry or circuit breaker.
func (g *Gemini) doGenerate(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.New().String()

	if len(prompt) > maxInputChars {
		slog.Warn("prompt truncated for gemini api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(prompt)),
			slog.Int("truncated_length", maxInputChars))
		prompt = prompt[:maxInputChars]
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{
			Temperature:     defaultTemperature,
			TopP:            defaultTopP,
			TopK:            defaultTopK,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
		SafetySettings: safetySettings(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini request marshal: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.InfoContext(ctx, "Starting generation",
		slog.String("request_id", requestID),
		slog.String("provider", "gemini"),
		slog.String("model", g.model),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Generation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini response read: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "Gemini API returned error status",
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", duration))
		// HTTPError carries the status so the retry layer can tell
		// transient failures (429, 5xx) from permanent ones.
		return "", fmt.Errorf("gemini api error: %w",
			&retry.HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)})
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("gemini response parse: %w", err)
	}

	if parsed.PromptFeedback.BlockReason != "" {
		slog.WarnContext(ctx, "Gemini API blocked prompt",
			slog.String("request_id", requestID),
			slog.String("block_reason", parsed.PromptFeedback.BlockReason))
		return "", fmt.Errorf("gemini api blocked prompt: %s", parsed.PromptFeedback.BlockReason)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		slog.ErrorContext(ctx, "Gemini API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("gemini api returned empty response")
	}

	summary := parsed.Candidates[0].Content.Parts[0].Text
	summaryLength := text.CountRunes(summary)

	slog.InfoContext(ctx, "Generation completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Duration("duration", duration))

	g.metricsRecorder.RecordLength(summaryLength)
	g.metricsRecorder.RecordDuration("gemini", duration)

	return summary, nil
}
