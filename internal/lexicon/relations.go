package lexicon

import "github.com/heartmarshall/lexitron/internal/domain"

// HasRelations reports whether a lexical-relations resource is attached.
func (l *Lexicon) HasRelations() bool {
	return l.relations.Available()
}

// Definitions returns one record per sense of word carrying its definition,
// examples and verb frames. Diacritics are folded as configured; case is left
// to the resource.
func (l *Lexicon) Definitions(word string) []domain.RelationRecord {
	return l.relations.Definitions(l.relationForm(word))
}

// Related returns one record per sense of word carrying its synonyms and
// other semantic relations.
func (l *Lexicon) Related(word string) []domain.RelationRecord {
	return l.relations.Related(l.relationForm(word))
}

// Languages returns the codes the resource can be queried in.
func (l *Lexicon) Languages() []string {
	return l.relations.Languages()
}

// Language returns the current working language.
func (l *Lexicon) Language() string {
	return l.relations.Language()
}

// SetLanguage switches the working language; unsupported codes are ignored.
func (l *Lexicon) SetLanguage(code string) {
	before := l.relations.Language()
	l.relations.SetLanguage(code)
	if after := l.relations.Language(); after != before {
		l.log.Debug("relation language changed", "from", before, "to", after)
	}
}

func (l *Lexicon) relationForm(word string) string {
	return domain.Normalize(word, false, l.diacFold)
}
