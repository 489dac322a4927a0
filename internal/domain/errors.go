package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrLoadFailure = errors.New("load failure")
	ErrPattern     = errors.New("invalid pattern")
)

// LoadError reports that a lexicon source could not be opened or read.
// No engine is ever returned alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load lexicon: %v", e.Err)
	}
	return fmt.Sprintf("load lexicon %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying I/O error.
func (e *LoadError) Unwrap() []error { return []error{ErrLoadFailure, e.Err} }

// NewLoadError creates a LoadError for the given source path.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

// PatternError reports a malformed regular expression. It is scoped to a single
// query; the engine is unaffected.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error { return []error{ErrPattern, e.Err} }

// NewPatternError creates a PatternError for the given pattern.
func NewPatternError(pattern string, err error) *PatternError {
	return &PatternError{Pattern: pattern, Err: err}
}
