package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	punctuationRe = regexp.MustCompile(`[?!.,;:]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	greetSlangRe  = regexp.MustCompile(`\b(cc|slt|bjr)\b`)
	howAreYouRe   = regexp.MustCompile(`\bcava\b`)
)

// Normalize canonicalizes raw user text for comparison: lowercase, strip
// accents, drop punctuation, collapse whitespace and expand common French
// chat slang. Idempotent.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = stripAccents(s)
	s = punctuationRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = greetSlangRe.ReplaceAllString(s, "bonjour")
	s = howAreYouRe.ReplaceAllString(s, "comment vas tu")
	return strings.TrimSpace(s)
}

// stripAccents decomposes accented characters and removes the combining
// diacritical marks ("é" becomes "e").
func stripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
