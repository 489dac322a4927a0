package wordnet

import (
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/lexitron/internal/domain"
	"github.com/heartmarshall/lexitron/internal/relation"
)

// Compile-time interface assertion.
var _ relation.Source = (*Library)(nil)

// framePlaceholder marks where the lemma goes in an OEWN frame template.
const framePlaceholder = "----"

// lookupPOS lists the parts of speech a word is looked up under; satellites
// are indexed with adjectives.
var lookupPOS = []domain.POS{domain.POSNoun, domain.POSVerb, domain.POSAdjective, domain.POSAdverb}

// Library holds one WordNet per language and implements relation.Source.
type Library struct {
	nets  map[string]*WordNet
	langs []string
}

// Languages returns the loaded language codes in sorted order.
func (l *Library) Languages() []string {
	return slices.Clone(l.langs)
}

// Lemmatize returns the shortest base form of word for pos in lang, or word
// itself if it has none.
func (l *Library) Lemmatize(word string, pos domain.POS, lang string) string {
	wn, ok := l.nets[lang]
	if !ok {
		return word
	}
	return wn.Lemmatize(word, pos)
}

// Synsets returns the senses of word in lang.
func (l *Library) Synsets(word, lang string) []string {
	wn, ok := l.nets[lang]
	if !ok {
		return nil
	}
	return wn.Synsets(word)
}

// Synset returns a sense of lang by ID.
func (l *Library) Synset(id, lang string) (relation.Synset, bool) {
	wn, ok := l.nets[lang]
	if !ok {
		return relation.Synset{}, false
	}
	syn, ok := wn.synsets[id]
	return syn, ok
}

// WordNet is the indexed data of one language. It is read-only after construction.
type WordNet struct {
	lang    string
	synsets map[string]relation.Synset
	// index maps a lookup form to its synset IDs in sense order, per POS.
	index map[domain.POS]map[string][]string
	// exceptions maps an irregular inflection to its base forms, per POS.
	exceptions map[domain.POS]map[string][]string
}

// lemmaKey identifies one lemma within one synset.
type lemmaKey struct {
	synset string
	word   string
}

func newWordNet(lang string, entryFiles []oewnEntryFile, synsetFiles []oewnSynsetFile, frameFiles []oewnFrameFile) *WordNet {
	wn := &WordNet{
		lang:       lang,
		synsets:    make(map[string]relation.Synset),
		index:      make(map[domain.POS]map[string][]string),
		exceptions: make(map[domain.POS]map[string][]string),
	}
	for _, pos := range lookupPOS {
		wn.index[pos] = make(map[string][]string)
		wn.exceptions[pos] = make(map[string][]string)
	}

	frames := make(map[string]string)
	for _, ff := range frameFiles {
		maps.Copy(frames, ff)
	}
	raw := make(map[string]oewnSynset)
	for _, sf := range synsetFiles {
		maps.Copy(raw, sf)
	}

	// Step 1: Index entries; build senseID→word and (synset, word)→sense.
	senseToWord := make(map[string]string)
	senses := make(map[lemmaKey]oewnSense)
	for _, ef := range entryFiles {
		for _, word := range slices.Sorted(maps.Keys(ef)) {
			form := lookupForm(word)
			for _, pos := range domain.AllPOS {
				entry, ok := ef[word][string(pos)]
				if !ok {
					continue
				}
				ip := indexPOS(pos)
				for _, sense := range entry.Sense {
					senseToWord[sense.ID] = word
					senses[lemmaKey{synset: sense.Synset, word: word}] = sense
					wn.index[ip][form] = appendUnique(wn.index[ip][form], sense.Synset)
				}
				for _, inflected := range entry.Form {
					key := lookupForm(inflected)
					wn.exceptions[ip][key] = appendUnique(wn.exceptions[ip][key], form)
				}
			}
		}
	}

	// Step 2: Inverse pointers OEWN leaves implicit (hyponyms, holonyms, meronyms).
	ids := slices.Sorted(maps.Keys(raw))
	inverse := make(map[string]map[domain.RelationKind][]string)
	addInverse := func(target string, kind domain.RelationKind, source string) {
		if inverse[target] == nil {
			inverse[target] = make(map[domain.RelationKind][]string)
		}
		inverse[target][kind] = appendUnique(inverse[target][kind], source)
	}
	for _, id := range ids {
		s := raw[id]
		for _, t := range s.Hypernym {
			addInverse(t, domain.RelationHyponyms, id)
		}
		for _, t := range s.Hyponym {
			addInverse(t, domain.RelationHypernyms, id)
		}
		for _, t := range s.MeroPart {
			addInverse(t, domain.RelationPartHolonyms, id)
		}
		for _, t := range s.HoloPart {
			addInverse(t, domain.RelationPartMeronyms, id)
		}
		for _, t := range s.MeroSubstance {
			addInverse(t, domain.RelationSubstanceHolonyms, id)
		}
		for _, t := range s.HoloSubstance {
			addInverse(t, domain.RelationSubstanceMeronyms, id)
		}
	}

	// Step 3: Assemble synsets with their lemmas.
	for _, id := range ids {
		s := raw[id]
		syn := relation.Synset{
			ID:          id,
			POS:         synsetPOS(id, s.PartOfSpeech),
			Number:      1,
			Definitions: s.Definition,
			Pointers:    make(map[domain.RelationKind][]string),
		}
		for _, ex := range s.Example {
			if ex.Text != "" {
				syn.Examples = append(syn.Examples, ex.Text)
			}
		}

		direct := map[domain.RelationKind][]string{
			domain.RelationHypernyms:         s.Hypernym,
			domain.RelationHyponyms:          s.Hyponym,
			domain.RelationPartMeronyms:      s.MeroPart,
			domain.RelationPartHolonyms:      s.HoloPart,
			domain.RelationSubstanceMeronyms: s.MeroSubstance,
			domain.RelationSubstanceHolonyms: s.HoloSubstance,
			domain.RelationEntailments:       s.Entails,
		}
		for kind, targets := range direct {
			merged := slices.Clone(targets)
			for _, t := range inverse[id][kind] {
				merged = appendUnique(merged, t)
			}
			if len(merged) > 0 {
				syn.Pointers[kind] = merged
			}
		}

		for _, member := range s.Members {
			sense := senses[lemmaKey{synset: id, word: member}]
			lemma := relation.Lemma{
				Name:     member,
				Frames:   renderFrames(frames, sense.Subcat, member),
				Pointers: make(map[domain.RelationKind][]string),
			}
			lemmaPointers := map[domain.RelationKind][]string{
				domain.RelationAntonyms:    sense.Antonym,
				domain.RelationPertainyms:  sense.Pertainym,
				domain.RelationDerivations: sense.Derivation,
			}
			for kind, targets := range lemmaPointers {
				for _, senseID := range targets {
					if word, ok := senseToWord[senseID]; ok {
						lemma.Pointers[kind] = appendUnique(lemma.Pointers[kind], word)
					}
				}
			}
			syn.Lemmas = append(syn.Lemmas, lemma)
		}

		if len(s.Members) > 0 {
			syn.Base = s.Members[0]
			if n := slices.Index(wn.index[indexPOS(syn.POS)][lookupForm(syn.Base)], id); n >= 0 {
				syn.Number = n + 1
			}
		}

		wn.synsets[id] = syn
	}

	return wn
}

// Lemmatize returns the shortest base form of word for pos, or word itself.
func (wn *WordNet) Lemmatize(word string, pos domain.POS) string {
	forms := wn.morphy(word, pos)
	if len(forms) == 0 {
		return word
	}
	shortest := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(shortest) {
			shortest = f
		}
	}
	return shortest
}

// Synsets returns the IDs of every sense of word or of its base forms, by
// part of speech and then sense order.
func (wn *WordNet) Synsets(word string) []string {
	var ids []string
	for _, pos := range lookupPOS {
		for _, form := range wn.morphy(word, pos) {
			for _, id := range wn.index[pos][form] {
				ids = appendUnique(ids, id)
			}
		}
	}
	return ids
}

// Language returns the code the WordNet was loaded under.
func (wn *WordNet) Language() string {
	return wn.lang
}

func (wn *WordNet) lemmaCount() int {
	n := 0
	for _, forms := range wn.index {
		n += len(forms)
	}
	return n
}

// renderFrames substitutes name into each frame template referenced by subcat.
func renderFrames(frames map[string]string, subcat []string, name string) []string {
	var out []string
	for _, id := range subcat {
		tmpl, ok := frames[id]
		if !ok {
			continue
		}
		out = append(out, strings.Replace(tmpl, framePlaceholder, name, 1))
	}
	return out
}

// synsetPOS derives the POS from an ID like "02086723-n", falling back to partOfSpeech.
func synsetPOS(id, partOfSpeech string) domain.POS {
	if i := strings.LastIndexByte(id, '-'); i >= 0 {
		if pos := domain.POS(id[i+1:]); pos.IsValid() {
			return pos
		}
	}
	return domain.POS(partOfSpeech)
}

// indexPOS maps satellites onto adjectives.
func indexPOS(pos domain.POS) domain.POS {
	if pos == domain.POSAdjSatellite {
		return domain.POSAdjective
	}
	return pos
}

// lookupForm is the form lemmas are indexed under.
func lookupForm(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

// appendUnique appends s to the slice only if not already present.
func appendUnique(sl []string, s string) []string {
	if slices.Contains(sl, s) {
		return sl
	}
	return append(sl, s)
}
