package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanEnv isolates a CLI run from the caller's configuration.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "LEXICON_PATH", "LEXICON_FORMAT", "LEXICON_IPA", "WORDNET_PATH", "WORDNET_LANGUAGE"} {
		// Setenv restores the variable after the test; an empty value would
		// still override the config file, so unset it.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("LOG_LEVEL", "error")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func wordsPath() string { return filepath.Join("testdata", "words.txt") }
func oewnDir() string   { return filepath.Join("testdata", "oewn") }

func TestRun_Usage(t *testing.T) {
	cleanEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"-lexicon", wordsPath(), "spell", "cat"}},
		{"missing word", []string{"-lexicon", wordsPath(), "contains"}},
		{"unknown flag", []string{"-verbose", "contains", "cat"}},
		{"no lexicon", []string{"contains", "cat"}},
		{"unknown format", []string{"-lexicon", wordsPath(), "-format", "csv", "contains", "cat"}},
		{"ipa without cmu", []string{"-lexicon", wordsPath(), "-ipa", "contains", "cat"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
		})
	}
}

func TestRun_Version(t *testing.T) {
	cleanEnv(t)

	code, stdout, _ := runCLI(t, "-version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "lexitron dev")
}

func TestRun_Queries(t *testing.T) {
	cleanEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"contains exact", []string{"contains", "Dog"}, "Dog\n"},
		{"contains folded", []string{"-ignore-case", "contains", "DOG"}, "Dog\ndog\n"},
		{"several words", []string{"contains", "cat", "act"}, "cat\nact\n"},
		{"prefix", []string{"-ignore-case", "prefix", "d"}, "Dog dog\n"},
		{"suffix", []string{"suffix", "t"}, "act\ncat\n"},
		{"regex", []string{"regex", "^a"}, "act\n"},
		{"anagrams", []string{"anagrams", "tca"}, "cat\nact\n"},
		{"homophones", []string{"homophones", "cat"}, ""},
		{"pronunciations", []string{"-ignore-case", "pronunciations", "DOG"}, "D AO1 G\nD AA1 G\n"},
		{"stats", []string{"stats"}, "entries: 4\nwith_pronunciations: 3\nvariants: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-lexicon", wordsPath()}, tt.args...)
			code, stdout, stderr := runCLI(t, args...)
			require.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRun_InvalidPattern(t *testing.T) {
	cleanEnv(t)

	code, stdout, stderr := runCLI(t, "-lexicon", wordsPath(), "regex", "a(")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "regex:")
}

func TestRun_MissingLexicon(t *testing.T) {
	cleanEnv(t)

	code, _, stderr := runCLI(t, "-lexicon", filepath.Join("testdata", "missing.txt"), "stats")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "missing.txt")
}

func TestRun_Relations(t *testing.T) {
	cleanEnv(t)

	code, stdout, stderr := runCLI(t, "-lexicon", wordsPath(), "-wordnet", oewnDir(), "definitions", "dogs")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "dog.n.01 (N)\n"+
		"  definition: a member of the genus Canis\n"+
		"  examples: the dog barked all night; dogs are loyal\n")
	assert.Contains(t, stdout, "dog.v.01 (V)\n")
	assert.Contains(t, stdout, "  frame_strings: Somebody dogs something\n")

	code, stdout, stderr = runCLI(t, "-lexicon", wordsPath(), "-wordnet", oewnDir(), "related", "dog")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "  synonyms: dog, domestic dog\n")
	assert.Contains(t, stdout, "  hypernyms: canine\n")

	code, stdout, stderr = runCLI(t, "-lexicon", wordsPath(), "-wordnet", oewnDir(), "-language", "en", "languages")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "eng *\n", stdout)
}

func TestRun_RelationsUnavailable(t *testing.T) {
	cleanEnv(t)

	for _, name := range []string{"definitions", "related", "languages"} {
		args := []string{"-lexicon", wordsPath(), name}
		if name != "languages" {
			args = append(args, "dog")
		}
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, exitError, code, name)
		assert.Contains(t, stderr, "no wordnet resource", name)
	}

	// A broken resource is logged and the lexicon still answers.
	code, stdout, stderr := runCLI(t, "-lexicon", wordsPath(), "-wordnet", filepath.Join("testdata", "nowhere"), "contains", "cat")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "cat\n", stdout)
}

func TestRun_Progress(t *testing.T) {
	cleanEnv(t)

	code, _, stderr := runCLI(t, "-lexicon", wordsPath(), "-progress", "stats")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Reading       0%")
	assert.Contains(t, stderr, "Done        100%")
}

func TestRun_ConfigFile(t *testing.T) {
	cleanEnv(t)

	abs, err := filepath.Abs(wordsPath())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexitron.yaml")
	content := "lexicon:\n  path: \"" + abs + "\"\n  ignore_case: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	code, stdout, stderr := runCLI(t, "-config", path, "contains", "DOG")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Dog\ndog\n", stdout)

	// Flags win over the file.
	code, stdout, stderr = runCLI(t, "-config", path, "-ignore-case=false", "contains", "DOG")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	code, _, _ = runCLI(t, "-config", filepath.Join(t.TempDir(), "absent.yaml"), "stats")
	assert.Equal(t, exitError, code)
}

func TestRun_CMUDict(t *testing.T) {
	cleanEnv(t)

	dict := filepath.Join("testdata", "words.dict")

	code, stdout, stderr := runCLI(t, "-lexicon", dict, "-format", "cmu", "pronunciations", "DOG")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "D AO1 G\nD AA1 G\n", stdout)

	code, stdout, stderr = runCLI(t, "-lexicon", dict, "-format", "cmu", "-ipa", "-ignore-case", "pronunciations", "cat")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "/kæt/\n", stdout)

	code, stdout, stderr = runCLI(t, "-lexicon", dict, "-format", "cmu", "stats")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "entries: 3\nwith_pronunciations: 3\nvariants: 4\n", stdout)
}
