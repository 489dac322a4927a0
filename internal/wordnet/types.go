package wordnet

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OEWN deserialization types. The same shapes are read from the JSON export
// and from the YAML sources.

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]oewnPOSEntry

// oewnPOSEntry holds senses for a single POS of a word.
type oewnPOSEntry struct {
	// Form lists irregular inflections of the word, e.g. "geese" under "goose".
	Form  []string    `json:"form"  yaml:"form"`
	Sense []oewnSense `json:"sense" yaml:"sense"`
}

// oewnSense holds a single sense linking a word to a synset.
type oewnSense struct {
	ID         string   `json:"id"         yaml:"id"`
	Synset     string   `json:"synset"     yaml:"synset"`
	Antonym    []string `json:"antonym"    yaml:"antonym"`
	Pertainym  []string `json:"pertainym"  yaml:"pertainym"`
	Derivation []string `json:"derivation" yaml:"derivation"`
	Subcat     []string `json:"subcat"     yaml:"subcat"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	PartOfSpeech  string        `json:"partOfSpeech"   yaml:"partOfSpeech"`
	Members       []string      `json:"members"        yaml:"members"`
	Definition    []string      `json:"definition"     yaml:"definition"`
	Example       []oewnExample `json:"example"        yaml:"example"`
	Hypernym      []string      `json:"hypernym"       yaml:"hypernym"`
	Hyponym       []string      `json:"hyponym"        yaml:"hyponym"`
	MeroPart      []string      `json:"mero_part"      yaml:"mero_part"`
	HoloPart      []string      `json:"holo_part"      yaml:"holo_part"`
	MeroSubstance []string      `json:"mero_substance" yaml:"mero_substance"`
	HoloSubstance []string      `json:"holo_substance" yaml:"holo_substance"`
	Entails       []string      `json:"entails"        yaml:"entails"`
}

// oewnSynsetFile represents a synset file keyed by synset ID.
type oewnSynsetFile map[string]oewnSynset

// oewnFrameFile maps a verb frame ID to its template, e.g. "Somebody ----s something".
type oewnFrameFile map[string]string

// oewnExample is a usage example. OEWN writes it either as a bare string or
// as an object with a text and a source; both decode to Text.
type oewnExample struct {
	Text string
}

func (e *oewnExample) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		e.Text = s
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("example: %w", err)
	}
	e.Text = obj.Text
	return nil
}

func (e *oewnExample) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		e.Text = n.Value
		return nil
	}

	var obj struct {
		Text string `yaml:"text"`
	}
	if err := n.Decode(&obj); err != nil {
		return fmt.Errorf("example: %w", err)
	}
	e.Text = obj.Text
	return nil
}
