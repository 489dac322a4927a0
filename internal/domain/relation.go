package domain

import (
	"fmt"
	"slices"
	"strings"
)

// RelationKind names one kind of lexical relation attached to a word sense.
type RelationKind string

const (
	RelationDefinition        RelationKind = "definition"
	RelationExamples          RelationKind = "examples"
	RelationFrameStrings      RelationKind = "frame_strings"
	RelationSynonyms          RelationKind = "synonyms"
	RelationAntonyms          RelationKind = "antonyms"
	RelationPertainyms        RelationKind = "pertainyms"
	RelationHypernyms         RelationKind = "hypernyms"
	RelationHyponyms          RelationKind = "hyponyms"
	RelationPartMeronyms      RelationKind = "part_meronyms"
	RelationPartHolonyms      RelationKind = "part_holonyms"
	RelationSubstanceMeronyms RelationKind = "substance_meronyms"
	RelationSubstanceHolonyms RelationKind = "substance_holonyms"
	RelationEntailments       RelationKind = "entailments"
	RelationDerivations       RelationKind = "derivationally_related_forms"
)

// RelationGroup selects which query a kind belongs to.
type RelationGroup string

const (
	GroupDefinitions RelationGroup = "defs"
	GroupRelated     RelationGroup = "rels"
)

// RelationExtent says which lemmas of a sense a kind may draw on.
type RelationExtent string

const (
	// ExtentHead restricts a kind to lemmas that are inflectional heads of the query.
	ExtentHead RelationExtent = "head"
	// ExtentSynset admits every lemma.
	ExtentSynset RelationExtent = "syns"
)

// RelationLevel says where in the resource a kind is read from.
type RelationLevel string

const (
	LevelSynset  RelationLevel = "synset"  // a property of the sense itself
	LevelMembers RelationLevel = "members" // the sense's own lemma names
	LevelLemma   RelationLevel = "lemma"   // a property or pointer of each lemma
	LevelPointer RelationLevel = "pointer" // lemmas of senses the sense points to
)

// ValueShape is the fixed output shape of a kind.
type ValueShape string

const (
	ShapeList ValueShape = "list"
	ShapeText ValueShape = "text"
)

type kindSpec struct {
	group  RelationGroup
	extent RelationExtent
	level  RelationLevel
	shape  ValueShape
}

// relationKinds is the canonical output order.
var relationKinds = []RelationKind{
	RelationDefinition,
	RelationExamples,
	RelationFrameStrings,
	RelationSynonyms,
	RelationAntonyms,
	RelationPertainyms,
	RelationHypernyms,
	RelationHyponyms,
	RelationPartMeronyms,
	RelationPartHolonyms,
	RelationSubstanceMeronyms,
	RelationSubstanceHolonyms,
	RelationEntailments,
	RelationDerivations,
}

var kindSpecs = map[RelationKind]kindSpec{
	RelationDefinition:        {GroupDefinitions, ExtentHead, LevelSynset, ShapeList},
	RelationExamples:          {GroupDefinitions, ExtentHead, LevelSynset, ShapeList},
	RelationFrameStrings:      {GroupDefinitions, ExtentHead, LevelLemma, ShapeList},
	RelationSynonyms:          {GroupRelated, ExtentSynset, LevelMembers, ShapeText},
	RelationAntonyms:          {GroupRelated, ExtentSynset, LevelLemma, ShapeText},
	RelationPertainyms:        {GroupRelated, ExtentSynset, LevelLemma, ShapeText},
	RelationHypernyms:         {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationHyponyms:          {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationPartMeronyms:      {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationPartHolonyms:      {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationSubstanceMeronyms: {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationSubstanceHolonyms: {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationEntailments:       {GroupRelated, ExtentSynset, LevelPointer, ShapeText},
	RelationDerivations:       {GroupRelated, ExtentHead, LevelLemma, ShapeText},
}

func (k RelationKind) String() string { return string(k) }

func (k RelationKind) IsValid() bool {
	_, ok := kindSpecs[k]
	return ok
}

func (k RelationKind) Group() RelationGroup   { return kindSpecs[k].group }
func (k RelationKind) Extent() RelationExtent { return kindSpecs[k].extent }
func (k RelationKind) Level() RelationLevel   { return kindSpecs[k].level }
func (k RelationKind) Shape() ValueShape      { return kindSpecs[k].shape }

// RelationKindsOf returns the kinds of a group in canonical order.
func RelationKindsOf(group RelationGroup) []RelationKind {
	var kinds []RelationKind
	for _, k := range relationKinds {
		if k.Group() == group {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// RelationValue holds a relation in the shape fixed for its kind: Text for
// ShapeText kinds, List for ShapeList kinds. The other field is always empty.
type RelationValue struct {
	Text string
	List []string
}

// NewRelationValue shapes items according to kind.
func NewRelationValue(kind RelationKind, items []string) RelationValue {
	if kind.Shape() == ShapeText {
		return RelationValue{Text: strings.Join(items, ", ")}
	}
	return RelationValue{List: slices.Clone(items)}
}

// Relation is one named relation of a sense.
type Relation struct {
	Kind  RelationKind
	Value RelationValue
}

// RelationRecord is one sense of a word with its relations in canonical kind order.
type RelationRecord struct {
	Base      string
	POS       POS
	Number    int
	Relations []Relation
}

// Name returns the WordNet-style sense name, e.g. "dog.n.01".
func (r RelationRecord) Name() string {
	return fmt.Sprintf("%s.%s.%02d", r.Base, r.POS, r.Number)
}

// Get returns the value recorded for kind.
func (r RelationRecord) Get(kind RelationKind) (RelationValue, bool) {
	for _, rel := range r.Relations {
		if rel.Kind == kind {
			return rel.Value, true
		}
	}
	return RelationValue{}, false
}
