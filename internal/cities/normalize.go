// internal/cities/normalize.go
//
// Input normalization for city-name matching. Guesses and dataset keys go
// through the same pipeline, so "São José", "SAN JOSE" and "san  jose"
// all land on the same lookup key.
//
// Steps:
//   1. trim + lowercase
//   2. fold diacritics to ASCII (NFD → strip combining marks → NFC)
//   3. "&" → " and "
//   4. punctuation → spaces ("st. louis" → "st louis")
//   5. drop the standalone word "city" ("new york city" → "new york")
//   6. collapse whitespace

package cities

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	punctRe    = regexp.MustCompile(`[^\w\s]`)
	cityWordRe = regexp.MustCompile(`\bcity\b`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Normalize reduces a name or guess to its canonical lookup key.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = foldDiacritics(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = punctRe.ReplaceAllString(s, " ")
	s = cityWordRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldDiacritics strips combining marks ("josé" → "jose").
// A fresh transformer per call: transform.Transformer carries state and is
// not safe for concurrent reuse.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
