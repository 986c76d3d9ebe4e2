package summarize

import (
	"math"
	"strings"

	"docbrief/internal/utils/text"
)

// Rating bands for the composite quality score.
const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingFair             = "Fair"
	RatingNeedsImprovement = "Needs Improvement"
	RatingError            = "Error"
)

// Scoring rubric. The point values and thresholds are the behavioral
// contract; changing any of them is a breaking change for stored scores.
const (
	compressionPoints = 25
	indicatorPoints   = 20
	structurePoints   = 15
	lengthPoints      = 20
	sentencePoints    = 20

	minCompressionRatio = 0.05
	maxCompressionRatio = 0.4
	adequateWordCount   = 50
	shortWordCount      = 20
)

// keyIndicators is the fixed vocabulary whose presence in a summary earns
// the key-content bonus.
var keyIndicators = []string{
	"conclusion", "summary", "therefore", "thus", "overall", "key", "important", "main",
}

// QualityReport is the deterministic evaluation of a (source, summary) pair.
type QualityReport struct {
	// Score is the composite 0-100 quality score.
	Score int `json:"score"`

	// Rating is the qualitative band for Score.
	Rating string `json:"rating"`

	// CompressionPct is the compression ratio as a percentage,
	// rounded to one decimal.
	CompressionPct float64 `json:"compression_pct"`

	// OriginalWordCount and SummaryWordCount are the word counts the
	// ratio was computed from.
	OriginalWordCount int `json:"original_word_count"`
	SummaryWordCount  int `json:"summary_word_count"`

	// Notes are human-readable observations accumulated while scoring.
	Notes []string `json:"notes"`

	// Suggestions recommend follow-up actions based on score and ratio.
	Suggestions []string `json:"suggestions"`
}

// EvaluateQuality scores a summary against its source using a fixed additive
// rubric: compression ratio, key-indicator presence, structural formatting,
// length adequacy, and sentence completeness. It is pure and never fails;
// an internal fault degrades to a zero score with the Error rating.
func EvaluateQuality(original, summary string) (report *QualityReport) {
	defer func() {
		if r := recover(); r != nil {
			report = &QualityReport{
				Score:  0,
				Rating: RatingError,
				Notes:  []string{"Error evaluating summary"},
			}
		}
	}()

	originalWords := text.CountWords(original)
	summaryWords := text.CountWords(summary)

	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	score := 0
	var notes []string

	switch {
	case ratio >= minCompressionRatio && ratio <= maxCompressionRatio:
		score += compressionPoints
		notes = append(notes, "Good compression ratio")
	case ratio < minCompressionRatio:
		notes = append(notes, "Summary might be too brief")
	default:
		notes = append(notes, "Summary might be too verbose")
	}

	lower := strings.ToLower(summary)
	for _, indicator := range keyIndicators {
		if strings.Contains(lower, indicator) {
			score += indicatorPoints
			notes = append(notes, "Contains key content indicators")
			break
		}
	}

	if strings.ContainsAny(summary, "•-\n") {
		score += structurePoints
		notes = append(notes, "Well-structured format")
	}

	if summaryWords >= adequateWordCount {
		score += lengthPoints
		notes = append(notes, "Appropriate summary length")
	} else if summaryWords < shortWordCount {
		notes = append(notes, "Summary might be too short")
	}

	if len(strings.Split(summary, ".")) >= 2 {
		score += sentencePoints
		notes = append(notes, "Contains complete thoughts")
	}

	return &QualityReport{
		Score:             score,
		Rating:            ratingFor(score),
		CompressionPct:    math.Round(ratio*1000) / 10,
		OriginalWordCount: originalWords,
		SummaryWordCount:  summaryWords,
		Notes:             notes,
		Suggestions:       improvementSuggestions(score, ratio),
	}
}

// ratingFor maps a score to its qualitative band. Boundaries are inclusive
// on the high side: exactly 80 is Excellent, exactly 60 is Good.
func ratingFor(score int) string {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

func improvementSuggestions(score int, ratio float64) []string {
	var suggestions []string

	if score < 60 {
		suggestions = append(suggestions,
			"Consider regenerating with a different style",
			"Check if the document text is properly extracted")
	}

	if ratio < minCompressionRatio {
		suggestions = append(suggestions, "Try 'Detailed' style for more comprehensive summary")
	}

	if ratio > maxCompressionRatio {
		suggestions = append(suggestions, "Try 'Abstract' style for more concise summary")
	}

	if score < 40 {
		suggestions = append(suggestions,
			"Verify document format is supported",
			"Ensure document contains readable text content")
	}

	return suggestions
}
