package config

import "strings"

// Config is the root application configuration.
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	WordNet WordNetConfig `yaml:"wordnet"`
	Log     LogConfig     `yaml:"log"`
}

// Lexicon source formats.
const (
	FormatLines = "lines"
	FormatCMU   = "cmu"
)

// LexiconConfig holds the word list source and its normalization flags.
// Format "cmu" reads a CMU Pronouncing Dictionary instead of lexicon lines;
// IPA then writes its pronunciations in IPA rather than ARPAbet.
type LexiconConfig struct {
	Path             string `yaml:"path"              env:"LEXICON_PATH"`
	Format           string `yaml:"format"            env:"LEXICON_FORMAT"            env-default:"lines"`
	IPA              bool   `yaml:"ipa"               env:"LEXICON_IPA"               env-default:"false"`
	IgnoreCase       bool   `yaml:"ignore_case"       env:"LEXICON_IGNORE_CASE"       env-default:"false"`
	IgnoreDiacritics bool   `yaml:"ignore_diacritics" env:"LEXICON_IGNORE_DIACRITICS" env-default:"false"`
}

// IsCMU reports whether the source is a CMU Pronouncing Dictionary.
func (l LexiconConfig) IsCMU() bool {
	return strings.EqualFold(strings.TrimSpace(l.Format), FormatCMU)
}

// WordNetConfig holds the optional lexical-relations resource settings.
// An empty Path disables definitions and related-word queries.
type WordNetConfig struct {
	Path            string `yaml:"path"             env:"WORDNET_PATH"`
	Language        string `yaml:"language"         env:"WORDNET_LANGUAGE"         env-default:"eng"`
	DefaultLanguage string `yaml:"default_language" env:"WORDNET_DEFAULT_LANGUAGE" env-default:"eng"`
	LoadWorkers     int    `yaml:"load_workers"     env:"WORDNET_LOAD_WORKERS"     env-default:"0"`
}

// Enabled reports whether a resource directory is configured.
func (c WordNetConfig) Enabled() bool {
	return c.Path != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
