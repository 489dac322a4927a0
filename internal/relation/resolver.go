package relation

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/heartmarshall/lexitron/internal/domain"
)

// Resolver answers relation queries for one engine instance. A Resolver built
// without a Source is unavailable and returns empty results.
type Resolver struct {
	src Source

	mu   sync.RWMutex
	lang string
}

// New creates a Resolver over src, working in lang. If lang is not supported
// the first language of src is used. src may be nil.
func New(src Source, lang string) *Resolver {
	r := &Resolver{src: src}
	if src == nil {
		return r
	}

	langs := src.Languages()
	if code, ok := matchLanguage(lang, langs); ok {
		r.lang = code
	} else if len(langs) > 0 {
		r.lang = langs[0]
	}
	return r
}

// Available reports whether a resource is attached.
func (r *Resolver) Available() bool {
	return r.src != nil
}

// Languages returns the supported language codes.
func (r *Resolver) Languages() []string {
	if r.src == nil {
		return nil
	}
	return r.src.Languages()
}

// Language returns the current working language.
func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage switches the working language. Codes are matched exactly first,
// then by ISO 639 base language, so "en" selects "eng". Unsupported codes are
// ignored.
func (r *Resolver) SetLanguage(code string) {
	if r.src == nil {
		return
	}
	match, ok := matchLanguage(code, r.src.Languages())
	if !ok {
		return
	}

	r.mu.Lock()
	r.lang = match
	r.mu.Unlock()
}

// Definitions returns, for each sense of word, its definition, examples and
// verb frames.
func (r *Resolver) Definitions(word string) []domain.RelationRecord {
	return r.lookup(word, domain.GroupDefinitions)
}

// Related returns, for each sense of word, its synonyms, antonyms and other
// semantic relations.
func (r *Resolver) Related(word string) []domain.RelationRecord {
	return r.lookup(word, domain.GroupRelated)
}

func (r *Resolver) lookup(word string, group domain.RelationGroup) []domain.RelationRecord {
	if r.src == nil {
		return nil
	}
	word = lookupForm(word)
	if word == "" {
		return nil
	}

	lang := r.Language()
	kinds := domain.RelationKindsOf(group)
	heads := r.heads(word, lang)

	var records []domain.RelationRecord
	for _, id := range r.src.Synsets(word, lang) {
		syn, ok := r.src.Synset(id, lang)
		if !ok {
			continue
		}

		c := newCollector()
		for _, kind := range kinds {
			r.collect(c, kind, syn, heads, lang)
		}

		records = append(records, domain.RelationRecord{
			Base:      syn.Base,
			POS:       syn.POS,
			Number:    syn.Number,
			Relations: c.relations(kinds),
		})
	}
	return records
}

func (r *Resolver) collect(c *collector, kind domain.RelationKind, syn Synset, heads map[string]bool, lang string) {
	switch kind.Level() {
	case domain.LevelSynset:
		switch kind {
		case domain.RelationDefinition:
			c.set(kind, syn.Definitions)
		case domain.RelationExamples:
			c.set(kind, syn.Examples)
		}

	case domain.LevelMembers:
		for _, lemma := range syn.Lemmas {
			c.add(kind, lemma.Name)
		}

	case domain.LevelLemma:
		for _, lemma := range syn.Lemmas {
			if excluded(kind, lemma.Name, heads) {
				continue
			}
			if kind == domain.RelationFrameStrings {
				c.add(kind, lemma.Frames...)
				continue
			}
			c.add(kind, lemma.Pointers[kind]...)
		}

	case domain.LevelPointer:
		for _, targetID := range syn.Pointers[kind] {
			target, ok := r.src.Synset(targetID, lang)
			if !ok {
				continue
			}
			for _, lemma := range target.Lemmas {
				if excluded(kind, lemma.Name, heads) {
					continue
				}
				c.add(kind, lemma.Name)
			}
		}
	}
}

// heads returns the base forms of word across every part of speech.
func (r *Resolver) heads(word, lang string) map[string]bool {
	heads := make(map[string]bool, len(domain.AllPOS))
	for _, pos := range domain.AllPOS {
		heads[lookupForm(r.src.Lemmatize(word, pos, lang))] = true
	}
	return heads
}

// excluded reports whether a head-restricted kind must skip lemma.
func excluded(kind domain.RelationKind, lemma string, heads map[string]bool) bool {
	return kind.Extent() == domain.ExtentHead && !heads[lookupForm(lemma)]
}

// lookupForm is the form words and lemma names are compared in.
func lookupForm(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

func matchLanguage(code string, langs []string) (string, bool) {
	for _, l := range langs {
		if strings.EqualFold(l, code) {
			return l, true
		}
	}

	want, err := language.ParseBase(code)
	if err != nil {
		return "", false
	}
	for _, l := range langs {
		if base, err := language.ParseBase(l); err == nil && base == want {
			return l, true
		}
	}
	return "", false
}

// collector accumulates deduplicated values per kind for one sense.
type collector struct {
	values map[domain.RelationKind][]string
}

func newCollector() *collector {
	return &collector{values: make(map[domain.RelationKind][]string)}
}

// set records kind as present even when items is empty.
func (c *collector) set(kind domain.RelationKind, items []string) {
	c.values[kind] = slices.Clone(items)
	if c.values[kind] == nil {
		c.values[kind] = []string{}
	}
}

func (c *collector) add(kind domain.RelationKind, items ...string) {
	for _, item := range items {
		if item == "" || slices.Contains(c.values[kind], item) {
			continue
		}
		c.values[kind] = append(c.values[kind], item)
	}
}

// relations shapes the collected values in canonical kind order.
func (c *collector) relations(kinds []domain.RelationKind) []domain.Relation {
	var out []domain.Relation
	for _, kind := range kinds {
		items, ok := c.values[kind]
		if !ok {
			continue
		}
		out = append(out, domain.Relation{Kind: kind, Value: domain.NewRelationValue(kind, items)})
	}
	return out
}
