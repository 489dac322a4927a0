package lexicon

import (
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/lexitron/internal/domain"
)

// Contains returns the spellings whose canonical key equals that of word,
// in source order. It returns nil when there is none.
func (l *Lexicon) Contains(word string) []string {
	key := l.normalize(word)
	if _, found := slices.BinarySearch(l.idx.keys, key); !found {
		return nil
	}
	return slices.Clone(l.idx.refs[key])
}

// WithPrefix returns, for every key starting with prefix, that key's spellings
// joined by a space. Keys are visited in sorted order.
func (l *Lexicon) WithPrefix(prefix string) []string {
	prefix = l.normalize(prefix)
	return l.scan(func(key string) bool { return strings.HasPrefix(key, prefix) })
}

// WithSuffix is WithPrefix for endings.
func (l *Lexicon) WithSuffix(suffix string) []string {
	suffix = l.normalize(suffix)
	return l.scan(func(key string) bool { return strings.HasSuffix(key, suffix) })
}

func (l *Lexicon) scan(match func(key string) bool) []string {
	var result []string
	for _, key := range l.idx.keys {
		if match(key) {
			result = append(result, strings.Join(l.idx.refs[key], " "))
		}
	}
	return result
}

// Regex returns every spelling whose canonical key contains a match of pattern.
// Matching is case-insensitive when the Lexicon folds case; diacritics are not
// folded in the pattern. A malformed pattern yields a *domain.PatternError.
func (l *Lexicon) Regex(pattern string) ([]string, error) {
	expr := pattern
	if l.caseFold {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, domain.NewPatternError(pattern, err)
	}

	var result []string
	for _, key := range l.idx.keys {
		if re.MatchString(key) {
			result = append(result, l.idx.refs[key]...)
		}
	}
	return result, nil
}

// Anagrams returns the spellings sharing word's anagram signature, in source
// order. The word itself is included when present in the lexicon.
func (l *Lexicon) Anagrams(word string) []string {
	sig := domain.AnagramSignature(word, l.diacFold)
	if sig == "" {
		return nil
	}
	return slices.Clone(l.idx.anagrams[sig])
}

// Homophones returns the spellings sharing at least one pronunciation with word.
// Spellings under word's own canonical key are excluded.
func (l *Lexicon) Homophones(word string) []string {
	key := l.normalize(word)
	own := l.idx.refs[key]

	var result []string
	for _, pron := range l.idx.prons[key] {
		for _, spelling := range l.idx.spellings[pron] {
			if slices.Contains(own, spelling) {
				continue
			}
			result = appendUnique(result, spelling)
		}
	}
	return result
}

// Pronunciations returns the recorded pronunciations of word. ok is false when
// the word has none.
func (l *Lexicon) Pronunciations(word string) (prons []string, ok bool) {
	prons, ok = l.idx.prons[l.normalize(word)]
	if !ok {
		return nil, false
	}
	return slices.Clone(prons), true
}

// Stats returns entry and pronunciation counts of the source.
func (l *Lexicon) Stats() Stats {
	return l.idx.stats
}
