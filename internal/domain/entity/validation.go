package entity

import (
	"fmt"
	"strings"
)

// Field length limits. Oversized values are rejected rather than truncated so
// callers learn about bad input instead of silently losing data.
const (
	maxUserIDLength       = 128
	maxDocumentNameLength = 512
)

// ValidateUserID validates a caller-supplied user identifier.
// User IDs are opaque and never checked against an identity system, but they
// must be non-blank and bounded since they scope every query and become part
// of archive file paths.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &ValidationError{Field: "user_id", Message: "is required"}
	}
	if len(userID) > maxUserIDLength {
		return &ValidationError{
			Field:   "user_id",
			Message: fmt.Sprintf("must not exceed %d characters", maxUserIDLength),
		}
	}
	return nil
}

// ValidateStyle validates that a style string is one of the supported styles.
func ValidateStyle(style Style) error {
	if !style.Valid() {
		return &ValidationError{
			Field:   "summary_style",
			Message: "must be one of bullet, abstract, detailed",
		}
	}
	return nil
}

// ValidateDocumentName validates caller-supplied document metadata.
func ValidateDocumentName(name string) error {
	if len(name) > maxDocumentNameLength {
		return &ValidationError{
			Field:   "document_name",
			Message: fmt.Sprintf("must not exceed %d characters", maxDocumentNameLength),
		}
	}
	return nil
}

// Validate checks a record for internal consistency before persistence.
func (r *SummaryRecord) Validate() error {
	if err := ValidateUserID(r.UserID); err != nil {
		return err
	}
	if err := ValidateStyle(r.SummaryStyle); err != nil {
		return err
	}
	if err := ValidateDocumentName(r.DocumentName); err != nil {
		return err
	}
	if r.SummaryText == "" {
		return &ValidationError{Field: "summary_text", Message: "is required"}
	}
	if r.QualityScore != nil && (*r.QualityScore < 0 || *r.QualityScore > 100) {
		return &ValidationError{Field: "quality_score", Message: "must be between 0 and 100"}
	}
	return nil
}
