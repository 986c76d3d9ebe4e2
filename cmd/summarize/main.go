// Package main provides a one-shot CLI summarizer.
// Usage: docbrief-summarize [--style bullet|abstract|detailed] [--file doc.txt] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"docbrief/internal/config"
	"docbrief/internal/domain/entity"
	"docbrief/internal/infra/generator"
	"docbrief/internal/usecase/summarize"
	"docbrief/internal/utils/text"
)

// resultOutput is the JSON output format for --output json.
type resultOutput struct {
	Style             string                   `json:"style"`
	Summary           string                   `json:"summary"`
	OriginalWordCount int                      `json:"original_word_count"`
	SummaryWordCount  int                      `json:"summary_word_count"`
	ElapsedSeconds    float64                  `json:"elapsed_seconds"`
	Quality           *summarize.QualityReport `json:"quality"`
}

func main() {
	var (
		styleName    string
		filePath     string
		outputFormat string
	)

	flag.StringVar(&styleName, "style", "bullet", "Summary style: bullet, abstract or detailed")
	flag.StringVar(&filePath, "file", "", "Document to summarize (default: stdin)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	style := entity.Style(styleName)
	if err := entity.ValidateStyle(style); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Usage: docbrief-summarize [--style bullet|abstract|detailed] [--file doc.txt] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  docbrief-summarize --file report.txt")
		fmt.Fprintln(os.Stderr, "  cat report.txt | docbrief-summarize --style detailed")
		fmt.Fprintln(os.Stderr, "  docbrief-summarize --file report.txt --output json")
		os.Exit(1)
	}

	// 要約本文はstdoutに出すため、ログはstderrへ
	logger := initLogger()

	raw, err := readDocument(filePath)
	if err != nil {
		logger.Error("failed to read document", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen, err := generator.New(generator.Config{
		Provider: cfg.Generator.Provider,
		APIKey:   cfg.Generator.APIKey,
		Model:    cfg.Generator.Model,
		Timeout:  cfg.Generator.Timeout,
	})
	if err != nil {
		logger.Error("failed to create generator", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := summarize.NewService(gen, nil, logger,
		summarize.WithGenerationTimeout(cfg.Generator.GenerationTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Generator.GenerationTimeout+30*time.Second)
	defer cancel()

	logger.Info("Generating summary",
		slog.String("provider", cfg.Generator.Provider),
		slog.String("style", string(style)),
		slog.Int("input_bytes", len(raw)))

	start := time.Now()
	summaryText, err := svc.Generate(ctx, raw, style)
	if err != nil {
		logger.Error("summarization failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	result := resultOutput{
		Style:             string(style),
		Summary:           summaryText,
		OriginalWordCount: text.CountWords(raw),
		SummaryWordCount:  text.CountWords(summaryText),
		ElapsedSeconds:    math.Round(elapsed.Seconds()*100) / 100,
		Quality:           summarize.EvaluateQuality(raw, summaryText),
	}

	if outputFormat == "json" {
		outputJSON(result)
	} else {
		outputText(result)
	}
}

// readDocument reads the document from path, or stdin when path is empty.
func readDocument(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// outputText prints the summary and quality report in human-readable form.
func outputText(result resultOutput) {
	fmt.Printf("Summary (%s):\n%s\n\n", result.Style, result.Summary)
	fmt.Printf("Words: %d -> %d (%.2fs)\n",
		result.OriginalWordCount, result.SummaryWordCount, result.ElapsedSeconds)

	q := result.Quality
	if q == nil {
		return
	}
	fmt.Printf("Quality: %d/100 (%s), compression %.1f%%\n", q.Score, q.Rating, q.CompressionPct)
	for _, note := range q.Notes {
		fmt.Printf("  - %s\n", note)
	}
	if len(q.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range q.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
}

// outputJSON prints the result as indented JSON on stdout.
func outputJSON(result resultOutput) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger returns a text logger on stderr honoring LOG_LEVEL.
func initLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
