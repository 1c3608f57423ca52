package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a country name for index lookups: case-fold, strip
// diacritics, collapse internal whitespace, drop punctuation other than
// internal hyphens. "Côte d’Ivoire" and "cote divoire" normalize identically
// apart from the apostrophe being dropped.
func Normalize(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Mark stripping only fails on invalid UTF-8; fall back to the input.
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastWasSpace := true
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		case r == '-':
			// Internal hyphens survive (Guinea-Bissau, Timor-Leste).
			if !lastWasSpace {
				b.WriteRune('-')
				lastWasSpace = false
			}
		}
		// All other punctuation is dropped.
	}
	return strings.TrimRight(b.String(), " -")
}
