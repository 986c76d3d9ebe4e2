package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This correctly handles multi-byte characters including Japanese, Chinese,
// emoji, and other Unicode characters by counting runes instead of bytes.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
// This is the word count used for compression ratios and stored metadata, so
// every caller must count the same way.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
