package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/heartmarshall/lexitron/internal/domain"
)

const maxLineSize = 1 << 20

// Stats summarises a loaded lexicon.
type Stats struct {
	Entries            int // non-comment lines
	WithPronunciations int // entries carrying at least one pronunciation
	Variants           int // pronunciations as written, before per-key deduplication
}

// index holds every structure derived from the source. It is never modified
// after build returns.
type index struct {
	refs      map[string][]string // canonical key → distinct spellings, first-seen order
	keys      []string            // sorted keys of refs
	anagrams  map[string][]string // anagram signature → distinct spellings
	prons     map[string][]string // canonical key → distinct pronunciations
	spellings map[string][]string // pronunciation → distinct spellings
	stats     Stats
}

// readLines reads the whole source, dropping comments and empty lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || domain.IsComment(line) {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return lines, nil
}

// build derives all indices from lines in four passes: the Reading pass is
// done by the caller, then Normalizing, Sorting and Hashing.
func build(lines []string, caseFold, diacFold bool, p *progress) *index {
	idx := &index{
		refs:      make(map[string][]string),
		anagrams:  make(map[string][]string),
		prons:     make(map[string][]string),
		spellings: make(map[string][]string),
	}
	idx.stats.Entries = len(lines)
	p.setUnits(len(lines))

	// Normalizing: reference and pronunciation maps.
	p.start(domain.PhaseNormalizing)
	entries := make([]domain.Entry, len(lines))
	for i, line := range lines {
		p.step(domain.PhaseNormalizing)

		entry := domain.ParseEntry(line)
		entries[i] = entry
		key := domain.Normalize(entry.Spelling, caseFold, diacFold)

		if entry.HasPronunciations() {
			idx.stats.WithPronunciations++
			idx.stats.Variants += len(entry.Pronunciations)
			for _, pron := range entry.Pronunciations {
				idx.prons[key] = appendUnique(idx.prons[key], pron)
				idx.spellings[pron] = appendUnique(idx.spellings[pron], entry.Spelling)
			}
		}
		idx.refs[key] = appendUnique(idx.refs[key], entry.Spelling)
	}

	// Sorting: the key list used for binary search and range scans.
	p.start(domain.PhaseSorting)
	idx.keys = make([]string, 0, len(idx.refs))
	for key := range idx.refs {
		idx.keys = append(idx.keys, key)
	}
	slices.Sort(idx.keys)

	// Hashing: anagram groups, from spellings rather than keys.
	p.start(domain.PhaseHashing)
	for _, entry := range entries {
		p.step(domain.PhaseHashing)

		sig := domain.AnagramSignature(entry.Spelling, diacFold)
		if sig == "" {
			continue
		}
		idx.anagrams[sig] = appendUnique(idx.anagrams[sig], entry.Spelling)
	}

	return idx
}

// appendUnique appends s to the slice only if not already present.
func appendUnique(sl []string, s string) []string {
	if slices.Contains(sl, s) {
		return sl
	}
	return append(sl, s)
}
