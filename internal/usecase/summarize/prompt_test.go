package summarize

import (
	"strings"
	"testing"

	"docbrief/internal/domain/entity"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	const doc = "The quarterly report shows revenue growth across all regions."

	tests := []struct {
		name     string
		style    entity.Style
		wantHint string
	}{
		{name: "bullet", style: entity.StyleBullet, wantHint: "bullet-point summary"},
		{name: "abstract", style: entity.StyleAbstract, wantHint: "professional abstract"},
		{name: "detailed", style: entity.StyleDetailed, wantHint: "detailed summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(doc, tt.style)

			if !strings.Contains(prompt, doc) {
				t.Error("prompt does not embed the document text verbatim")
			}
			if !strings.Contains(prompt, tt.wantHint) {
				t.Errorf("prompt for %s missing hint %q", tt.style, tt.wantHint)
			}
			if !strings.Contains(prompt, "Requirements:") {
				t.Error("prompt missing requirements block")
			}
			if !strings.Contains(prompt, "Document to summarize:") {
				t.Error("prompt missing document marker")
			}
		})
	}
}

func TestBuildPromptUnknownStyleFallsBack(t *testing.T) {
	t.Parallel()

	const doc = "Some document body."
	got := BuildPrompt(doc, entity.Style("haiku"))
	want := BuildPrompt(doc, entity.Style(""))

	if got != want {
		t.Error("unknown style did not fall back to the generic template")
	}
	if !strings.Contains(got, "comprehensive summary") {
		t.Errorf("generic prompt missing expected wording: %q", got)
	}
}

func TestPromptTemplatesCoverAllStyles(t *testing.T) {
	t.Parallel()

	for _, style := range entity.Styles() {
		if _, ok := promptTemplates[string(style)]; !ok {
			t.Errorf("no embedded template for style %q", style)
		}
	}
}
