package domain

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize maps a spelling to its canonical key:
//   - caseFold applies full Unicode case folding (not simple lowercasing)
//   - diacriticFold applies NFKD and drops every combining mark
//
// The result is stable under a second application with the same flags.
func Normalize(s string, caseFold, diacriticFold bool) string {
	if s == "" {
		return ""
	}
	if caseFold {
		s = foldCase(s)
	}
	if diacriticFold {
		s = stripDiacritics(s)
		if caseFold {
			// NFKD can expose letters with case (e.g. U+210C -> H).
			s = stripDiacritics(foldCase(s))
		}
	}
	return s
}

// AnagramSignature returns the key under which all anagrams of s group together:
// underscores and every non letter/number are dropped, the rest is case-folded,
// optionally stripped of diacritics, and sorted by code point. Marks exposed by
// folding (U+0130 -> i + U+0307) are dropped too, so the signature of a
// signature is itself.
//
// Case is always folded, regardless of the engine's case setting.
func AnagramSignature(s string, diacriticFold bool) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.Map(keepWordRune, s)
	s = Normalize(s, true, diacriticFold)
	// Folding and decomposition may leave marks or spacing symbols behind
	// (U+00A8 -> space + mark).
	s = strings.Map(keepWordRune, s)

	r := []rune(s)
	slices.Sort(r)
	return string(r)
}

func keepWordRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return r
	}
	return -1
}

// foldCase builds fresh Casers per call: Casers carry state and must not be shared.
// Folding maps some scripts (Cherokee) to upper case; the final Lower makes
// the result a fixed point.
func foldCase(s string) string {
	return cases.Lower(language.Und).String(cases.Fold().String(s))
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
