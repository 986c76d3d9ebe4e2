package entity

// Style identifies the format of a generated summary.
type Style string

// Supported summary styles.
const (
	// StyleBullet produces a structured list of key points.
	StyleBullet Style = "bullet"

	// StyleAbstract produces a 3-4 sentence condensed abstract.
	StyleAbstract Style = "abstract"

	// StyleDetailed produces a comprehensive narrative summary.
	StyleDetailed Style = "detailed"
)

// Styles returns all supported styles in display order.
func Styles() []Style {
	return []Style{StyleBullet, StyleAbstract, StyleDetailed}
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	switch s {
	case StyleBullet, StyleAbstract, StyleDetailed:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the style.
func (s Style) DisplayName() string {
	switch s {
	case StyleBullet:
		return "Bullet Points"
	case StyleAbstract:
		return "Abstract"
	case StyleDetailed:
		return "Detailed"
	}
	return string(s)
}

// Description returns a short explanation of what the style produces.
func (s Style) Description() string {
	switch s {
	case StyleBullet:
		return "Structured key points extracted from the document"
	case StyleAbstract:
		return "Concise 3-4 sentence professional abstract"
	case StyleDetailed:
		return "Comprehensive narrative covering arguments and evidence"
	}
	return ""
}
