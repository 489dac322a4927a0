// Package wordnet loads Open English WordNet (OEWN) data, in its JSON export or
// YAML source layout, and serves it as a relation.Source.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json ... entries-z.json   lemma entries keyed by word
//	noun.*.json, verb.*.json, ...       synsets keyed by synset ID
//	frames.json                         verb frame templates (optional)
//
// .yaml and .yml files are accepted in place of .json. A directory holding
// these files directly is one language; otherwise every sub-directory holding
// them is one language, named by the sub-directory.
package wordnet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the code given to a single-language directory when none is configured.
const DefaultLanguage = "eng"

var dataExts = []string{".json", ".yaml", ".yml"}

// LoadOptions configures Load.
type LoadOptions struct {
	// DefaultLanguage names the language of a directory holding the data files directly.
	DefaultLanguage string
	// Workers bounds concurrent file decoding. Defaults to runtime.NumCPU().
	Workers int
	Logger  *slog.Logger
}

// fileSet lists the data files of one language directory.
type fileSet struct {
	entries []string
	synsets []string
	frames  []string
}

func (fs fileSet) empty() bool {
	return len(fs.entries) == 0
}

// Load reads every language found under root.
func Load(ctx context.Context, root string, opts LoadOptions) (*Library, error) {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = DefaultLanguage
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	// Validate directory exists.
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	dirs, err := languageDirs(root, opts.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	lib := &Library{nets: make(map[string]*WordNet, len(dirs))}
	for lang, dir := range dirs {
		start := time.Now()
		wn, err := loadLanguage(ctx, lang, dir, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", lang, err)
		}
		lib.nets[wn.Language()] = wn
		lib.langs = append(lib.langs, wn.Language())

		log.Info("wordnet loaded",
			slog.String("language", wn.Language()),
			slog.Int("synsets", len(wn.synsets)),
			slog.Int("lemmas", wn.lemmaCount()),
			slog.Duration("duration", time.Since(start)),
		)
	}
	slices.Sort(lib.langs)

	return lib, nil
}

// languageDirs maps each language code to the directory holding its files.
func languageDirs(root, defaultLang string) (map[string]string, error) {
	files, err := findFiles(root)
	if err != nil {
		return nil, err
	}
	if !files.empty() {
		return map[string]string{defaultLang: root}, nil
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	dirs := make(map[string]string)
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		dir := filepath.Join(root, child.Name())
		files, err := findFiles(dir)
		if err != nil {
			return nil, err
		}
		if !files.empty() {
			dirs[child.Name()] = dir
		}
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("no wordnet data in %s", root)
	}
	return dirs, nil
}

// findFiles lists the data files of dir in a stable order.
func findFiles(dir string) (fileSet, error) {
	var fs fileSet
	for _, ext := range dataExts {
		entries, err := filepath.Glob(filepath.Join(dir, "entries-*"+ext))
		if err != nil {
			return fileSet{}, fmt.Errorf("glob entry files: %w", err)
		}
		fs.entries = append(fs.entries, entries...)

		// Synset files follow the pattern: {pos}.{category}.json where pos is noun/verb/adj/adv.
		for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
			matches, err := filepath.Glob(filepath.Join(dir, prefix+"*"+ext))
			if err != nil {
				return fileSet{}, fmt.Errorf("glob synset files: %w", err)
			}
			fs.synsets = append(fs.synsets, matches...)
		}

		frames := filepath.Join(dir, "frames"+ext)
		if _, err := os.Stat(frames); err == nil {
			fs.frames = append(fs.frames, frames)
		}
	}

	slices.Sort(fs.entries)
	slices.Sort(fs.synsets)
	return fs, nil
}

// loadLanguage decodes the files of one language concurrently and indexes them.
func loadLanguage(ctx context.Context, lang, dir string, workers int) (*WordNet, error) {
	files, err := findFiles(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]oewnEntryFile, len(files.entries))
	synsets := make([]oewnSynsetFile, len(files.synsets))
	frames := make([]oewnFrameFile, len(files.frames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	decode := func(path string, v any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := decodeFile(path, v); err != nil {
				return fmt.Errorf("read %s: %w", filepath.Base(path), err)
			}
			return nil
		})
	}
	for i, path := range files.entries {
		decode(path, &entries[i])
	}
	for i, path := range files.synsets {
		decode(path, &synsets[i])
	}
	for i, path := range files.frames {
		decode(path, &frames[i])
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newWordNet(lang, entries, synsets, frames), nil
}

// decodeFile reads a single JSON or YAML file into v.
func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(v); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}
	return nil
}
