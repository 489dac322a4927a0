// Command lexitron loads a word list and answers one query against it.
//
// Usage:
//
//	lexitron [flags] <command> [word...]
//
// Commands:
//
//	contains, prefix, suffix, regex, anagrams, homophones, pronunciations
//	definitions, related   (need a WordNet resource)
//	stats, languages       (take no word)
//
// Flags override the configuration file and environment:
//
//	-config             path to YAML config (default: $CONFIG_PATH or ./lexitron.yaml)
//	-lexicon            word list path
//	-format             source format: lines or cmu
//	-ipa                write CMU pronunciations in IPA
//	-ignore-case        fold case in keys
//	-ignore-diacritics  fold diacritics in keys
//	-wordnet            OEWN resource directory
//	-language           relation working language
//	-progress           print build progress to stderr
//	-version            print version and exit
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heartmarshall/lexitron/internal/app"
	"github.com/heartmarshall/lexitron/internal/config"
	"github.com/heartmarshall/lexitron/internal/domain"
	"github.com/heartmarshall/lexitron/internal/lexicon"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command is one query the CLI can run against a loaded lexicon.
type command struct {
	needsWord bool
	run       func(lex *lexicon.Lexicon, out io.Writer, word string) error
}

var commands = map[string]command{
	"contains":   {true, listQuery((*lexicon.Lexicon).Contains)},
	"prefix":     {true, listQuery((*lexicon.Lexicon).WithPrefix)},
	"suffix":     {true, listQuery((*lexicon.Lexicon).WithSuffix)},
	"anagrams":   {true, listQuery((*lexicon.Lexicon).Anagrams)},
	"homophones": {true, listQuery((*lexicon.Lexicon).Homophones)},
	"regex": {true, func(lex *lexicon.Lexicon, out io.Writer, pattern string) error {
		words, err := lex.Regex(pattern)
		if err != nil {
			return err
		}
		printLines(out, words)
		return nil
	}},
	"pronunciations": {true, func(lex *lexicon.Lexicon, out io.Writer, word string) error {
		prons, _ := lex.Pronunciations(word)
		printLines(out, prons)
		return nil
	}},
	"definitions": {true, relationQuery((*lexicon.Lexicon).Definitions)},
	"related":     {true, relationQuery((*lexicon.Lexicon).Related)},
	"stats": {false, func(lex *lexicon.Lexicon, out io.Writer, _ string) error {
		s := lex.Stats()
		fmt.Fprintf(out, "entries: %d\n", s.Entries)
		fmt.Fprintf(out, "with_pronunciations: %d\n", s.WithPronunciations)
		fmt.Fprintf(out, "variants: %d\n", s.Variants)
		return nil
	}},
	"languages": {false, func(lex *lexicon.Lexicon, out io.Writer, _ string) error {
		if !lex.HasRelations() {
			return errNoRelations
		}
		current := lex.Language()
		for _, code := range lex.Languages() {
			if code == current {
				fmt.Fprintf(out, "%s *\n", code)
				continue
			}
			fmt.Fprintln(out, code)
		}
		return nil
	}},
}

var errNoRelations = errors.New("no wordnet resource loaded (set -wordnet or wordnet.path)")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lexitron", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "path to YAML config file")
	lexiconFlag := fs.String("lexicon", "", "word list path")
	formatFlag := fs.String("format", config.FormatLines, "source format: lines or cmu")
	ipaFlag := fs.Bool("ipa", false, "write CMU pronunciations in IPA")
	ignoreCaseFlag := fs.Bool("ignore-case", false, "fold case in keys")
	ignoreDiacriticsFlag := fs.Bool("ignore-diacritics", false, "fold diacritics in keys")
	wordnetFlag := fs.String("wordnet", "", "OEWN resource directory")
	languageFlag := fs.String("language", "", "relation working language")
	progressFlag := fs.Bool("progress", false, "print build progress to stderr")
	versionFlag := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: lexitron [flags] <command> [word...]")
		fmt.Fprintf(stderr, "commands: %s\n", strings.Join(commandNames(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *versionFlag {
		fmt.Fprintln(stdout, app.BuildVersion())
		return exitOK
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}
	name, words := rest[0], rest[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()
		return exitUsage
	}
	if cmd.needsWord && len(words) == 0 {
		fmt.Fprintf(stderr, "command %q needs a word\n", name)
		return exitUsage
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitError
	}

	// CLI flags override config.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lexicon":
			cfg.Lexicon.Path = *lexiconFlag
		case "format":
			cfg.Lexicon.Format = *formatFlag
		case "ipa":
			cfg.Lexicon.IPA = *ipaFlag
		case "ignore-case":
			cfg.Lexicon.IgnoreCase = *ignoreCaseFlag
		case "ignore-diacritics":
			cfg.Lexicon.IgnoreDiacritics = *ignoreDiacriticsFlag
		case "wordnet":
			cfg.WordNet.Path = *wordnetFlag
		case "language":
			cfg.WordNet.Language = *languageFlag
		}
	})
	if cfg.Lexicon.Path == "" {
		fmt.Fprintln(stderr, "no lexicon: set -lexicon, lexicon.path or LEXICON_PATH")
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return exitUsage
	}

	logger := app.NewLogger(cfg.Log)

	progress := app.ProgressLogger(logger)
	if *progressFlag {
		progress = progressPrinter(stderr)
	}

	lex, err := app.Open(ctx, cfg, logger, progress)
	if err != nil {
		logger.Error("open lexicon", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "%v\n", err)
		return exitError
	}

	if !cmd.needsWord {
		words = []string{""}
	}
	for _, word := range words {
		if err := cmd.run(lex, stdout, word); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return exitError
		}
	}
	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func listQuery(query func(*lexicon.Lexicon, string) []string) func(*lexicon.Lexicon, io.Writer, string) error {
	return func(lex *lexicon.Lexicon, out io.Writer, word string) error {
		printLines(out, query(lex, word))
		return nil
	}
}

func relationQuery(query func(*lexicon.Lexicon, string) []domain.RelationRecord) func(*lexicon.Lexicon, io.Writer, string) error {
	return func(lex *lexicon.Lexicon, out io.Writer, word string) error {
		if !lex.HasRelations() {
			return errNoRelations
		}
		for _, rec := range query(lex, word) {
			printRecord(out, rec)
		}
		return nil
	}
}

// printRecord writes a sense header followed by one "kind: value" line per relation.
func printRecord(out io.Writer, rec domain.RelationRecord) {
	fmt.Fprintf(out, "%s (%s)\n", rec.Name(), rec.POS.Label())
	for _, rel := range rec.Relations {
		value := rel.Value.Text
		if rel.Kind.Shape() == domain.ShapeList {
			value = strings.Join(rel.Value.List, "; ")
		}
		if value == "" {
			fmt.Fprintf(out, "  %s:\n", rel.Kind)
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", rel.Kind, value)
	}
}

func printLines(out io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}

func progressPrinter(w io.Writer) domain.ProgressFunc {
	return func(phase domain.Phase, percent int) {
		fmt.Fprintf(w, "%-11s %3d%%\n", phase, percent)
	}
}

func commandNames() []string {
	return []string{
		"contains", "prefix", "suffix", "regex", "anagrams", "homophones",
		"pronunciations", "definitions", "related", "stats", "languages",
	}
}
