package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	lexiconFormats = []string{FormatLines, FormatCMU}
	logLevels      = []string{"debug", "info", "warn", "error"}
	logFormats     = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	if err := c.WordNet.validate(); err != nil {
		return fmt.Errorf("wordnet: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (l *LexiconConfig) validate() error {
	if !oneOf(l.Format, lexiconFormats) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(lexiconFormats, ", "), l.Format)
	}
	if l.IPA && !l.IsCMU() {
		return fmt.Errorf("ipa requires format %q", FormatCMU)
	}
	return nil
}

func (w *WordNetConfig) validate() error {
	if w.LoadWorkers < 0 {
		return fmt.Errorf("load_workers must be >= 0 (got %d)", w.LoadWorkers)
	}
	if strings.TrimSpace(w.DefaultLanguage) == "" {
		return fmt.Errorf("default_language must not be empty")
	}
	if _, err := language.ParseBase(w.DefaultLanguage); err != nil {
		return fmt.Errorf("default_language %q: %w", w.DefaultLanguage, err)
	}
	if w.Language != "" {
		if _, err := language.ParseBase(w.Language); err != nil {
			return fmt.Errorf("language %q: %w", w.Language, err)
		}
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !oneOf(l.Level, logLevels) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !oneOf(l.Format, logFormats) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
