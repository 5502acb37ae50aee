package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces and tabs inside a line into one space
//   - normalizes line endings to "\n" and keeps line breaks
//
// Case, diacritics and punctuation are preserved.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// TrimWord strips whitespace and surrounding punctuation from a selected word,
// keeping inner hyphens and apostrophes ("E-Mail", "geht's").
// Case is preserved: German nouns are capitalized.
func TrimWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
