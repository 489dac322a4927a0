// Package relation resolves definitions and semantic relations of a word
// against an optional WordNet-style resource.
package relation

import "github.com/heartmarshall/lexitron/internal/domain"

// Source is the lexical-relations capability. Implementations must be safe for
// concurrent reads.
type Source interface {
	// Languages returns the language codes the resource holds.
	Languages() []string
	// Lemmatize returns the base form of word for pos, or word itself when the
	// resource knows no base form.
	Lemmatize(word string, pos domain.POS, lang string) string
	// Synsets returns the IDs of every sense of word, base forms included, in
	// resource order.
	Synsets(word, lang string) []string
	// Synset returns a sense by ID.
	Synset(id, lang string) (Synset, bool)
}

// Synset is one sense as exposed by a Source.
type Synset struct {
	ID          string
	Base        string // first lemma of the sense
	POS         domain.POS
	Number      int // position of this sense among Base's senses, from 1
	Definitions []string
	Examples    []string
	Lemmas      []Lemma

	// Pointers maps a pointer-level kind (hypernyms, part_meronyms, ...) to
	// the IDs of the target senses.
	Pointers map[domain.RelationKind][]string
}

// Lemma is one word of a sense.
type Lemma struct {
	Name string
	// Frames are the lemma's verb frames with the lemma substituted in.
	Frames []string
	// Pointers maps a lemma-level kind (antonyms, pertainyms, derivations) to
	// the names of the target lemmas.
	Pointers map[domain.RelationKind][]string
}
