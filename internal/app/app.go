package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexitron/internal/cmudict"
	"github.com/heartmarshall/lexitron/internal/config"
	"github.com/heartmarshall/lexitron/internal/domain"
	"github.com/heartmarshall/lexitron/internal/lexicon"
	"github.com/heartmarshall/lexitron/internal/relation"
	"github.com/heartmarshall/lexitron/internal/wordnet"
)

// ErrNoLexicon is returned by Open when no lexicon path is configured.
var ErrNoLexicon = errors.New("lexicon path is not configured")

// Open builds the lexicon described by cfg. The WordNet resource is loaded
// first when configured; if it fails to load, a warning is logged and the
// lexicon is built without relations. progress may be nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, progress domain.ProgressFunc) (*lexicon.Lexicon, error) {
	if cfg.Lexicon.Path == "" {
		return nil, ErrNoLexicon
	}

	logger.Debug("opening lexicon",
		slog.String("version", BuildVersion()),
		slog.String("path", cfg.Lexicon.Path),
		slog.String("format", cfg.Lexicon.Format),
		slog.Bool("ignore_case", cfg.Lexicon.IgnoreCase),
		slog.Bool("ignore_diacritics", cfg.Lexicon.IgnoreDiacritics),
	)

	opts := lexicon.Options{
		CaseFold:      cfg.Lexicon.IgnoreCase,
		DiacriticFold: cfg.Lexicon.IgnoreDiacritics,
		Language:      cfg.WordNet.Language,
		Progress:      progress,
		Logger:        logger,
	}
	if cfg.Lexicon.IsCMU() {
		cmuOpts := cmudict.Options{IPA: cfg.Lexicon.IPA, Logger: logger}
		opts.Decode = func(r io.Reader) io.Reader {
			return cmudict.NewReader(r, cmuOpts)
		}
	}
	if src := openWordNet(ctx, cfg.WordNet, logger); src != nil {
		opts.Relations = src
	}

	lex, err := lexicon.Open(cfg.Lexicon.Path, opts)
	if err != nil {
		return nil, err
	}

	info := lex.Info()
	logger.Info("lexicon ready",
		slog.String("id", info.ID.String()),
		slog.Int("entries", info.Stats.Entries),
		slog.Bool("relations", info.HasRelations),
		slog.String("language", info.Language),
	)
	return lex, nil
}

// openWordNet returns nil when the resource is disabled or cannot be loaded.
func openWordNet(ctx context.Context, cfg config.WordNetConfig, logger *slog.Logger) relation.Source {
	if !cfg.Enabled() {
		return nil
	}

	lib, err := wordnet.Load(ctx, cfg.Path, wordnet.LoadOptions{
		DefaultLanguage: cfg.DefaultLanguage,
		Workers:         cfg.LoadWorkers,
		Logger:          logger,
	})
	if err != nil {
		logger.Warn("wordnet unavailable, relations disabled",
			slog.String("path", cfg.Path),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return lib
}

// ProgressLogger returns a ProgressFunc that logs each report at debug level
// together with the time elapsed since the first report.
func ProgressLogger(logger *slog.Logger) domain.ProgressFunc {
	var started time.Time
	return func(phase domain.Phase, percent int) {
		if started.IsZero() {
			started = time.Now()
		}
		logger.Debug("build progress",
			slog.String("phase", phase.String()),
			slog.Int("percent", percent),
			slog.Duration("elapsed", time.Since(started)),
		)
	}
}
