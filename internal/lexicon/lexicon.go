// Package lexicon builds in-memory indices over a word list and answers exact,
// prefix, suffix, regex, anagram, homophone and pronunciation queries.
//
// A Lexicon is immutable once constructed and safe for concurrent use. Changing
// the normalization flags or the source means building a new Lexicon.
package lexicon

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitron/internal/domain"
	"github.com/heartmarshall/lexitron/internal/relation"
)

// Options configures a Lexicon at construction.
type Options struct {
	CaseFold      bool
	DiacriticFold bool

	// Language is the initial working language of the relation resolver.
	// Ignored when Relations is nil.
	Language string
	// Relations is the optional lexical-relations resource. Nil disables
	// Definitions and Related.
	Relations relation.Source

	// Decode, when set, rewrites the raw source into lexicon lines before
	// they are read, e.g. cmudict.NewReader. A returned io.Closer is closed
	// once reading stops.
	Decode func(io.Reader) io.Reader

	Progress domain.ProgressFunc
	Logger   *slog.Logger
}

// Lexicon is a loaded, indexed word list.
type Lexicon struct {
	id        uuid.UUID
	path      string
	caseFold  bool
	diacFold  bool
	idx       *index
	relations *relation.Resolver
	log       *slog.Logger
}

// Info describes a loaded Lexicon.
type Info struct {
	ID            uuid.UUID
	Path          string
	CaseFold      bool
	DiacriticFold bool
	Language      string
	HasRelations  bool
	Stats         Stats
}

// Open builds a Lexicon from the file at path. Any open or read failure is
// returned as a *domain.LoadError.
func Open(path string, opts Options) (*Lexicon, error) {
	p := newProgress(opts.Progress)
	p.start(domain.PhaseReading)

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}
	defer f.Close()

	return load(path, f, opts, p)
}

// New builds a Lexicon from r. Any read failure is returned as a *domain.LoadError.
func New(r io.Reader, opts Options) (*Lexicon, error) {
	p := newProgress(opts.Progress)
	p.start(domain.PhaseReading)
	return load("", r, opts, p)
}

func load(path string, r io.Reader, opts Options, p *progress) (*Lexicon, error) {
	started := time.Now()

	if opts.Decode != nil {
		r = opts.Decode(r)
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}

	idx := build(lines, opts.CaseFold, opts.DiacriticFold, p)
	p.finish()

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	lex := &Lexicon{
		id:        uuid.New(),
		path:      path,
		caseFold:  opts.CaseFold,
		diacFold:  opts.DiacriticFold,
		idx:       idx,
		relations: relation.New(opts.Relations, opts.Language),
	}
	lex.log = log.With(slog.String("lexicon_id", lex.id.String()))

	lex.log.Info("lexicon loaded",
		slog.String("path", path),
		slog.Int("entries", idx.stats.Entries),
		slog.Int("keys", len(idx.keys)),
		slog.Int("anagram_groups", len(idx.anagrams)),
		slog.Int("with_pronunciations", idx.stats.WithPronunciations),
		slog.Bool("relations", lex.relations.Available()),
		slog.Duration("duration", time.Since(started)),
	)

	return lex, nil
}

// Info returns a description of the Lexicon.
func (l *Lexicon) Info() Info {
	return Info{
		ID:            l.id,
		Path:          l.path,
		CaseFold:      l.caseFold,
		DiacriticFold: l.diacFold,
		Language:      l.relations.Language(),
		HasRelations:  l.relations.Available(),
		Stats:         l.idx.stats,
	}
}

// normalize applies the engine's configured folding.
func (l *Lexicon) normalize(s string) string {
	return domain.Normalize(s, l.caseFold, l.diacFold)
}
