// Package text provides utilities for text processing and analysis.
// It includes the normalization pipeline applied to extracted document text
// before prompting, plus reusable counting helpers shared across AI providers.
package text

import (
	"regexp"
	"strings"
)

// The normalization pipeline is an ordered list of pure rewrites.
// Order matters: whitespace collapsing runs first so later steps see a
// predictable shape. Each step has its own compiled pattern and is unit
// tested independently.
var (
	// Runs of any whitespace, including newlines.
	reWhitespace = regexp.MustCompile(`\s+`)

	// Characters outside the conservative readable set: word characters
	// (Unicode letters, digits, underscore), whitespace, and common
	// punctuation. \p{L}\p{N} instead of \w so non-ASCII text survives.
	reNoise = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()\[\]{}]`)

	// OCR misreads: a vertical bar between word characters is a lost "l",
	// a zero between word characters is a lost "o".
	reOCRBar  = regexp.MustCompile(`([\p{L}\p{N}_])\|([\p{L}\p{N}_])`)
	reOCRZero = regexp.MustCompile(`([\p{L}\p{N}_])0([\p{L}\p{N}_])`)

	// Page-number artifacts: literal "Page N" tokens and lines that start
	// with a bare number.
	rePageToken  = regexp.MustCompile(`Page \d+`)
	reLineNumber = regexp.MustCompile(`(?m)^\d+\s*`)

	// Leading bullet markers at the start of a line.
	reBulletLead = regexp.MustCompile(`(?m)^\s*[•\-*]\s*`)

	// Three or more consecutive blank lines.
	reBlankLines = regexp.MustCompile(`\n\s*\n\s*\n+`)

	// Sentence-ending punctuation followed by a capital letter.
	reSentenceGap = regexp.MustCompile(`([.!?])\s*([A-Z])`)
)

// Normalize cleans raw extracted or pasted text before prompt construction.
// It is a deterministic pure function; empty or whitespace-only input yields
// an empty string, which callers must treat as "nothing to summarize".
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := collapseWhitespace(raw)
	s = stripNoise(s)
	s = repairOCR(s)
	s = stripPageArtifacts(s)
	s = stripBulletMarkers(s)
	s = collapseBlankLines(s)
	s = fixSentenceSpacing(s)

	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	return reWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func stripNoise(s string) string {
	return reNoise.ReplaceAllString(s, "")
}

func repairOCR(s string) string {
	s = reOCRBar.ReplaceAllString(s, "${1}l${2}")
	return reOCRZero.ReplaceAllString(s, "${1}o${2}")
}

func stripPageArtifacts(s string) string {
	s = rePageToken.ReplaceAllString(s, "")
	return reLineNumber.ReplaceAllString(s, "")
}

func stripBulletMarkers(s string) string {
	return reBulletLead.ReplaceAllString(s, "")
}

func collapseBlankLines(s string) string {
	return reBlankLines.ReplaceAllString(s, "\n\n")
}

func fixSentenceSpacing(s string) string {
	return reSentenceGap.ReplaceAllString(s, "${1} ${2}")
}
