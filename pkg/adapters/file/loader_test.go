package file_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skroutz/turkish-stemmer/pkg/adapters/file"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

const nounYAML = `
category: noun
initial: a
suffixes:
  - id: lar
    name: -lAr
    pattern: lar|ler
    check_harmony: true
  - id: m
    name: -(U)m
    pattern: m
    optional_letter: ı|i|u|ü
    check_harmony: true
states:
  - id: a
    terminal: false
    transitions:
      - {suffix: lar, to: b}
      - {suffix: m, to: b}
  - id: b
    terminal: true
    transitions: []
`

const listsYAML = `
protected:
  - kalem
harmony_exceptions:
  - saatler
devoicing_exceptions:
  - ad
overrides:
  - ev
`

func TestLoader_LoadRuleSet(t *testing.T) {
	fsys := fstest.MapFS{
		"noun.yaml": {Data: []byte(nounYAML)},
	}
	loader := file.New(fsys)

	rs, err := loader.LoadRuleSet(domain.CategoryNoun)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryNoun, rs.Category)
	assert.Equal(t, "a", rs.InitialStateID)

	t.Run("alternations are split", func(t *testing.T) {
		lar, err := rs.Suffix("lar")
		require.NoError(t, err)
		assert.Equal(t, []string{"lar", "ler"}, lar.Patterns)
		assert.True(t, lar.CheckHarmony)

		m, err := rs.Suffix("m")
		require.NoError(t, err)
		assert.Equal(t, []string{"ı", "i", "u", "ü"}, m.OptionalLetters)
	})

	t.Run("transitions keep their order", func(t *testing.T) {
		a, err := rs.State("a")
		require.NoError(t, err)
		require.Len(t, a.Transitions, 2)
		assert.Equal(t, "lar", a.Transitions[0].SuffixID)
		assert.Equal(t, "b", a.Transitions[0].ToStateID)
		assert.False(t, a.IsTerminal())

		b, err := rs.State("b")
		require.NoError(t, err)
		assert.True(t, b.IsTerminal())
	})
}

func TestLoader_LoadWordLists(t *testing.T) {
	fsys := fstest.MapFS{
		"wordlists.yaml": {Data: []byte(listsYAML)},
	}
	lists, err := file.New(fsys).LoadWordLists()
	require.NoError(t, err)

	assert.True(t, lists.Protected.Contains("kalem"))
	assert.True(t, lists.HarmonyExceptions.Contains("saatler"))
	assert.True(t, lists.DevoicingExceptions.Contains("ad"))
	assert.True(t, lists.Overrides.Contains("ev"))
	assert.False(t, lists.Protected.Contains("ev"))
}

func TestLoader_Faults(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := file.New(fstest.MapFS{}).LoadRuleSet(domain.CategoryNoun)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "noun.yaml")
	})

	t.Run("category mismatch", func(t *testing.T) {
		fsys := fstest.MapFS{
			"noun.yaml": {Data: []byte("category: derivational\ninitial: a\n")},
		}
		_, err := file.New(fsys).LoadRuleSet(domain.CategoryNoun)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declares category")
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"noun.yaml": {Data: []byte("category: noun\ninitial: a\nbogus: true\n")},
		}
		_, err := file.New(fsys).LoadRuleSet(domain.CategoryNoun)
		require.Error(t, err)
	})

	t.Run("duplicate suffix id", func(t *testing.T) {
		doc := `
category: noun
initial: a
suffixes:
  - id: lar
    pattern: lar
  - id: lar
    pattern: ler
states:
  - id: a
    terminal: true
`
		fsys := fstest.MapFS{"noun.yaml": {Data: []byte(doc)}}
		_, err := file.New(fsys).LoadRuleSet(domain.CategoryNoun)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate suffix id "lar"`)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"wordlists.yaml": {Data: []byte(":\n:::")}}
		_, err := file.New(fsys).LoadWordLists()
		require.Error(t, err)
	})
}
