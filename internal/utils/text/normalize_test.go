package text

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  "",
		},
		{
			name:  "collapses whitespace runs",
			input: "hello   world\n\nnext\tline",
			want:  "hello world next line",
		},
		{
			name:  "strips noise characters",
			input: "price: 9€ per r0om (approx.) #final",
			want:  "price: 9 per room (approx.) final",
		},
		{
			name:  "repairs zero between word characters",
			input: "the w0rd was garbled",
			want:  "the word was garbled",
		},
		{
			name:  "vertical bar is removed by the noise filter",
			input: "a|b",
			want:  "ab",
		},
		{
			name:  "removes page tokens",
			input: "Introduction Page 12 continues here",
			want:  "Introduction  continues here",
		},
		{
			name:  "removes bare leading number",
			input: "42 The answer follows",
			want:  "The answer follows",
		},
		{
			name:  "strips leading dash bullet",
			input: "- First point",
			want:  "First point",
		},
		{
			name:  "strips leading asterisk bullet",
			input: "* Second point",
			want:  "Second point",
		},
		{
			name:  "spaces sentence boundaries",
			input: "First sentence.Second sentence.",
			want:  "First sentence. Second sentence.",
		},
		{
			name:  "keeps unicode letters",
			input: "日本語のテキスト remains",
			want:  "日本語のテキスト remains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalizing already-normalized text must be a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"hello   world",
		"First sentence.Second one follows. Third here.",
		"- bullet one\n- bullet two",
		"the w0rd was f0und on Page 3",
		"A clean paragraph with nothing to fix.",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\n once: %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestNormalizeSteps(t *testing.T) {
	t.Run("repairOCR fixes bar and zero", func(t *testing.T) {
		if got := repairOCR("qua|ity c0ntrol"); got != "quality control" {
			t.Errorf("repairOCR = %q", got)
		}
	})

	t.Run("repairOCR leaves standalone digits", func(t *testing.T) {
		if got := repairOCR("version 2.0 beta"); got != "version 2.0 beta" {
			t.Errorf("repairOCR = %q", got)
		}
	})

	t.Run("stripPageArtifacts removes page header lines", func(t *testing.T) {
		if got := stripPageArtifacts("Page 1\nbody"); got != "\nbody" {
			t.Errorf("stripPageArtifacts = %q", got)
		}
	})

	t.Run("collapseBlankLines caps at one blank line", func(t *testing.T) {
		if got := collapseBlankLines("a\n\n\n\n\nb"); got != "a\n\nb" {
			t.Errorf("collapseBlankLines = %q", got)
		}
	})

	t.Run("stripBulletMarkers handles every marker", func(t *testing.T) {
		in := "• one\n- two\n* three"
		got := stripBulletMarkers(in)
		for _, marker := range []string{"•", "- ", "* "} {
			if strings.Contains(got, marker) {
				t.Errorf("marker %q survived: %q", marker, got)
			}
		}
	})
}

func TestCountRunes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"こんにちは", 5},
		{"hello世界", 7},
		{"", 0},
	}

	for _, tt := range tests {
		if got := CountRunes(tt.input); got != tt.want {
			t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two words", 2},
		{"  spaced   out\nwords\there  ", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
