package wordnet

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexitron/internal/domain"
	"github.com/heartmarshall/lexitron/internal/relation"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile is a test helper that creates a file with given content.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func loadFixture(t *testing.T) *Library {
	t.Helper()
	lib, err := Load(context.Background(), testdataPath(t, "oewn"), LoadOptions{Logger: discardLogger()})
	require.NoError(t, err)
	return lib
}

// --- Load: file handling ---

func TestLoad_DirectoryNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/wordnet", LoadOptions{Logger: discardLogger()})
	require.Error(t, err)
}

func TestLoad_NotADirectory(t *testing.T) {
	_, err := Load(context.Background(), testdataPath(t, "oewn/frames.json"), LoadOptions{Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestLoad_NoData(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), LoadOptions{Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wordnet data")
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "entries-a.json"), "not json at all"))

	_, err := Load(context.Background(), dir, LoadOptions{Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries-a.json")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "entries-a.yaml"), "dog: [unclosed"))

	_, err := Load(context.Background(), dir, LoadOptions{Logger: discardLogger()})
	require.Error(t, err)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testdataPath(t, "oewn"), LoadOptions{Logger: discardLogger(), Workers: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_SingleLanguage(t *testing.T) {
	lib := loadFixture(t)
	assert.Equal(t, []string{"eng"}, lib.Languages())
}

func TestLoad_DefaultLanguageOption(t *testing.T) {
	lib, err := Load(context.Background(), testdataPath(t, "oewn"), LoadOptions{
		DefaultLanguage: "en",
		Logger:          discardLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, lib.Languages())
}

func TestLoad_MultiLanguageMixedFormats(t *testing.T) {
	lib, err := Load(context.Background(), testdataPath(t, "multi"), LoadOptions{Logger: discardLogger()})
	require.NoError(t, err)
	require.Equal(t, []string{"eng", "fra"}, lib.Languages())
	for _, lang := range lib.Languages() {
		assert.Equal(t, lang, lib.nets[lang].Language())
	}

	assert.Equal(t, []string{"02086723-n"}, lib.Synsets("dog", "eng"))
	assert.Equal(t, []string{"02086723-n"}, lib.Synsets("chien", "fra"))
	assert.Empty(t, lib.Synsets("chien", "eng"))

	syn, ok := lib.Synset("02086723-n", "fra")
	require.True(t, ok)
	assert.Equal(t, "chien", syn.Base)
	assert.Equal(t, []string{"membre du genre Canis"}, syn.Definitions)
	assert.Equal(t, []string{"le chien aboie", "un chien fidèle"}, syn.Examples)
}

// --- Lookup ---

func TestSynsets_InflectedForm(t *testing.T) {
	lib := loadFixture(t)

	got := lib.Synsets("dogs", "eng")
	assert.Equal(t, []string{"02086723-n", "10133978-n", "02006031-v"}, got)
}

func TestSynsets_MultiwordAndSatellite(t *testing.T) {
	lib := loadFixture(t)

	assert.Equal(t, []string{"02086723-n"}, lib.Synsets("Domestic_Dog", "eng"))
	assert.Equal(t, []string{"01151000-s"}, lib.Synsets("glad", "eng"))
	assert.Empty(t, lib.Synsets("xylophone", "eng"))
	assert.Empty(t, lib.Synsets("", "eng"))
}

func TestSynsets_UnknownLanguage(t *testing.T) {
	lib := loadFixture(t)
	assert.Nil(t, lib.Synsets("dog", "zzz"))

	_, ok := lib.Synset("02086723-n", "zzz")
	assert.False(t, ok)
}

func TestLemmatize(t *testing.T) {
	lib := loadFixture(t)

	tests := []struct {
		word string
		pos  domain.POS
		want string
	}{
		{"dogs", domain.POSNoun, "dog"},
		{"walked", domain.POSVerb, "walk"},
		{"walking", domain.POSVerb, "walk"},
		{"geese", domain.POSNoun, "goose"},
		{"dogs", domain.POSAdjective, "dogs"},
		{"glad", domain.POSAdjSatellite, "glad"},
		{"xyz", domain.POSNoun, "xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, lib.Lemmatize(tt.word, tt.pos, "eng"))
		})
	}

	assert.Equal(t, "dogs", lib.Lemmatize("dogs", domain.POSNoun, "zzz"))
}

// --- Synset assembly ---

func TestSynset_Assembly(t *testing.T) {
	lib := loadFixture(t)

	syn, ok := lib.Synset("02086723-n", "eng")
	require.True(t, ok)

	assert.Equal(t, "dog", syn.Base)
	assert.Equal(t, domain.POSNoun, syn.POS)
	assert.Equal(t, 1, syn.Number)
	assert.Equal(t, []string{"a member of the genus Canis"}, syn.Definitions)
	assert.Equal(t, []string{"the dog barked all night", "dogs are loyal"}, syn.Examples)
	assert.Equal(t, []string{"02085998-n"}, syn.Pointers[domain.RelationHypernyms])
	assert.Equal(t, []string{"02158000-n"}, syn.Pointers[domain.RelationPartMeronyms])

	require.Len(t, syn.Lemmas, 2)
	assert.Equal(t, "dog", syn.Lemmas[0].Name)
	assert.Equal(t, "domestic dog", syn.Lemmas[1].Name)
	assert.Equal(t, []string{"dog"}, syn.Lemmas[0].Pointers[domain.RelationDerivations])
	assert.Empty(t, syn.Lemmas[1].Pointers[domain.RelationDerivations])
}

func TestSynset_SenseNumber(t *testing.T) {
	lib := loadFixture(t)

	syn, ok := lib.Synset("10133978-n", "eng")
	require.True(t, ok)
	assert.Equal(t, 2, syn.Number)
}

func TestSynset_InversePointers(t *testing.T) {
	lib := loadFixture(t)

	canine, _ := lib.Synset("02085998-n", "eng")
	assert.Equal(t, []string{"02086723-n"}, canine.Pointers[domain.RelationHyponyms])

	tail, _ := lib.Synset("02158000-n", "eng")
	assert.Equal(t, []string{"02086723-n"}, tail.Pointers[domain.RelationPartHolonyms])

	walk, _ := lib.Synset("01904930-v", "eng")
	assert.Equal(t, []string{"01911000-v"}, walk.Pointers[domain.RelationEntailments])
}

func TestSynset_LemmaRelations(t *testing.T) {
	lib := loadFixture(t)

	verb, _ := lib.Synset("02006031-v", "eng")
	require.Len(t, verb.Lemmas, 1)
	assert.Equal(t, []string{"Somebody dogs something"}, verb.Lemmas[0].Frames)

	happy, _ := lib.Synset("01148283-a", "eng")
	assert.Equal(t, []string{"unhappy"}, happy.Lemmas[0].Pointers[domain.RelationAntonyms])

	happily, _ := lib.Synset("00206000-r", "eng")
	assert.Equal(t, []string{"happy"}, happily.Lemmas[0].Pointers[domain.RelationPertainyms])

	glad, _ := lib.Synset("01151000-s", "eng")
	assert.Equal(t, domain.POSAdjSatellite, glad.POS)
}

// --- Served through relation.Resolver ---

func TestLibrary_Resolver(t *testing.T) {
	r := relation.New(loadFixture(t), "en")
	require.Equal(t, "eng", r.Language())

	defs := r.Definitions("dogs")
	require.Len(t, defs, 3)
	assert.Equal(t, "dog.n.01", defs[0].Name())
	assert.Equal(t, "dog.n.02", defs[1].Name())
	assert.Equal(t, "dog.v.01", defs[2].Name())

	frames, ok := defs[2].Get(domain.RelationFrameStrings)
	require.True(t, ok)
	assert.Equal(t, []string{"Somebody dogs something"}, frames.List)

	rels := r.Related("dogs")
	require.Len(t, rels, 3)
	syn, _ := rels[0].Get(domain.RelationSynonyms)
	assert.Equal(t, "dog, domestic dog", syn.Text)
	hyper, _ := rels[0].Get(domain.RelationHypernyms)
	assert.Equal(t, "canine", hyper.Text)
	parts, _ := rels[0].Get(domain.RelationPartMeronyms)
	assert.Equal(t, "tail", parts.Text)
	deriv, _ := rels[0].Get(domain.RelationDerivations)
	assert.Equal(t, "dog", deriv.Text)

	happy := r.Related("happy")
	require.Len(t, happy, 1)
	ant, _ := happy[0].Get(domain.RelationAntonyms)
	assert.Equal(t, "unhappy", ant.Text)
}

// --- Helpers ---

func TestApplyRules(t *testing.T) {
	got := applyRules([]string{"boxes"}, detachmentRules[domain.POSNoun])
	assert.Equal(t, []string{"boxe", "box"}, got)

	assert.Nil(t, applyRules([]string{"quickly"}, detachmentRules[domain.POSAdverb]))
}

func TestRenderFrames(t *testing.T) {
	frames := map[string]string{"via": "Somebody ----s", "vtai": "Somebody ----s something"}

	got := renderFrames(frames, []string{"via", "missing", "vtai"}, "run")
	assert.Equal(t, []string{"Somebody runs", "Somebody runs something"}, got)
}

func TestSynsetPOS(t *testing.T) {
	assert.Equal(t, domain.POSVerb, synsetPOS("02006031-v", ""))
	assert.Equal(t, domain.POSAdjSatellite, synsetPOS("01151000-s", "a"))
	assert.Equal(t, domain.POSNoun, synsetPOS("oewn-dog", "n"))
}
