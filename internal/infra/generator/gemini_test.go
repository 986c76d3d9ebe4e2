package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docbrief/internal/infra/generator"
)

// geminiHandler replays a canned generateContent response and captures the
// request body for inspection.
func geminiHandler(t *testing.T, summary string, captured *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": summary}},
				},
				"finishReason": "STOP",
			}},
		})
	}
}

func TestGemini_Generate(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(geminiHandler(t, "A concise summary.", &captured))
	defer srv.Close()

	g := generator.NewGemini(
		generator.Config{Provider: generator.ProviderGemini, APIKey: "test-key"},
		generator.WithGeminiBaseURL(srv.URL),
	)

	got, err := g.Generate(context.Background(), "Summarize this document.")
	if err != nil {
		t.Fatalf("Generate err=%v", err)
	}
	if got != "A concise summary." {
		t.Fatalf("Generate got=%q", got)
	}

	// The prompt must arrive verbatim in the first content part.
	contents := captured["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	if text := parts[0].(map[string]any)["text"].(string); text != "Summarize this document." {
		t.Errorf("prompt=%q", text)
	}
}

func TestGemini_Generate_SendsGenerationConfig(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(geminiHandler(t, "ok", &captured))
	defer srv.Close()

	g := generator.NewGemini(
		generator.Config{Provider: generator.ProviderGemini, APIKey: "test-key"},
		generator.WithGeminiBaseURL(srv.URL),
	)

	if _, err := g.Generate(context.Background(), "text"); err != nil {
		t.Fatalf("Generate err=%v", err)
	}

	gc := captured["generationConfig"].(map[string]any)
	if gc["temperature"].(float64) != 0.3 {
		t.Errorf("temperature=%v", gc["temperature"])
	}
	if gc["topP"].(float64) != 0.8 {
		t.Errorf("topP=%v", gc["topP"])
	}
	if gc["topK"].(float64) != 40 {
		t.Errorf("topK=%v", gc["topK"])
	}
	if gc["maxOutputTokens"].(float64) != 2048 {
		t.Errorf("maxOutputTokens=%v", gc["maxOutputTokens"])
	}

	settings := captured["safetySettings"].([]any)
	if len(settings) != 4 {
		t.Fatalf("safetySettings len=%d, want 4", len(settings))
	}
	for _, s := range settings {
		if th := s.(map[string]any)["threshold"].(string); th != "BLOCK_MEDIUM_AND_ABOVE" {
			t.Errorf("threshold=%q", th)
		}
	}
}

func TestGemini_Generate_BlockedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates":     []any{},
			"promptFeedback": map[string]any{"blockReason": "SAFETY"},
		})
	}))
	defer srv.Close()

	g := generator.NewGemini(
		generator.Config{Provider: generator.ProviderGemini, APIKey: "test-key"},
		generator.WithGeminiBaseURL(srv.URL),
	)

	_, err := g.Generate(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Fatalf("Generate err=%v, want blocked prompt error", err)
	}
}

func TestGemini_Generate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	g := generator.NewGemini(
		generator.Config{Provider: generator.ProviderGemini, APIKey: "test-key"},
		generator.WithGeminiBaseURL(srv.URL),
	)

	_, err := g.Generate(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("Generate err=%v, want empty response error", err)
	}
}

func TestGemini_Generate_BadRequestNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	g := generator.NewGemini(
		generator.Config{Provider: generator.ProviderGemini, APIKey: "test-key"},
		generator.WithGeminiBaseURL(srv.URL),
	)

	_, err := g.Generate(context.Background(), "text")
	if err == nil {
		t.Fatal("Generate expected error")
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1 (4xx must not be retried)", calls)
	}
}
