package wordnet

import (
	"strings"

	"github.com/heartmarshall/lexitron/internal/domain"
)

// suffixRule replaces an inflectional ending with a base ending.
type suffixRule struct {
	suffix string
	base   string
}

// detachmentRules are WordNet's morphological substitutions per POS.
var detachmentRules = map[domain.POS][]suffixRule{
	domain.POSNoun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	domain.POSVerb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	domain.POSAdjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	domain.POSAdverb: nil,
}

// morphy returns the base forms of word known to the index for pos:
//  1. irregular inflections listed in the data win outright;
//  2. otherwise the word itself and one round of detachment are tried;
//  3. otherwise detachment is repeated until something is found or nothing is left.
func (wn *WordNet) morphy(word string, pos domain.POS) []string {
	pos = indexPOS(pos)
	form := lookupForm(word)
	if form == "" {
		return nil
	}
	known := wn.index[pos]
	rules := detachmentRules[pos]

	filter := func(forms []string) []string {
		var result []string
		for _, f := range forms {
			if _, ok := known[f]; ok {
				result = appendUnique(result, f)
			}
		}
		return result
	}

	if bases, ok := wn.exceptions[pos][form]; ok {
		return filter(append([]string{form}, bases...))
	}

	forms := applyRules([]string{form}, rules)
	if result := filter(append([]string{form}, forms...)); len(result) > 0 {
		return result
	}

	// Every rule shortens the form, so this terminates.
	for len(forms) > 0 {
		forms = applyRules(forms, rules)
		if result := filter(forms); len(result) > 0 {
			return result
		}
	}
	return nil
}

func applyRules(forms []string, rules []suffixRule) []string {
	var out []string
	for _, f := range forms {
		for _, r := range rules {
			if stem, ok := strings.CutSuffix(f, r.suffix); ok {
				out = appendUnique(out, stem+r.base)
			}
		}
	}
	return out
}
