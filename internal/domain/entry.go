package domain

import "strings"

// PronunciationSeparator separates pronunciation variants after the tab.
const PronunciationSeparator = ", "

// Entry is one line of a lexicon source file.
type Entry struct {
	Spelling       string
	Pronunciations []string
}

// HasPronunciations reports whether the entry carries at least one pronunciation.
func (e Entry) HasPronunciations() bool {
	return len(e.Pronunciations) > 0
}

// ParseEntry splits a source line on its first tab: the head is the spelling and
// the tail is a ", "-separated pronunciation list. A line without a tab has no
// pronunciations; an empty tail is treated the same way.
func ParseEntry(line string) Entry {
	spelling, variants, ok := strings.Cut(line, "\t")
	if !ok || variants == "" {
		return Entry{Spelling: spelling}
	}
	return Entry{
		Spelling:       spelling,
		Pronunciations: strings.Split(variants, PronunciationSeparator),
	}
}

// IsComment reports whether a source line is a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
