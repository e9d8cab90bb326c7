package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

func TestSuffixMatch(t *testing.T) {
	s := domain.Suffix{
		ID:       "dur",
		Patterns: []string{"dır", "dir", "dur", "dür"},
	}

	t.Run("matching is anchored at the end", func(t *testing.T) {
		got, ok := s.Match("çocuktur")
		assert.False(t, ok, "tur is not among the voiced forms")
		assert.Empty(t, got)

		got, ok = s.Match("okuldur")
		require.True(t, ok)
		assert.Equal(t, "dur", got)
	})

	t.Run("longest pattern wins", func(t *testing.T) {
		accusative := domain.Suffix{ID: "leri", Patterns: []string{"leri", "i"}}
		got, ok := accusative.Match("evleri")
		require.True(t, ok)
		assert.Equal(t, "leri", got, "leri must beat the bare i")
	})

	t.Run("no pattern matches", func(t *testing.T) {
		_, ok := s.Match("kitap")
		assert.False(t, ok)
	})

	t.Run("empty patterns never match", func(t *testing.T) {
		empty := domain.Suffix{ID: "x", Patterns: []string{""}}
		_, ok := empty.Match("kitap")
		assert.False(t, ok)
	})
}

func TestSuffixOptionalLetters(t *testing.T) {
	s := domain.Suffix{
		ID:              "m",
		Patterns:        []string{"m"},
		OptionalLetters: []string{"ı", "i", "u", "ü"},
	}
	assert.True(t, s.HasOptionalLetter())
	assert.True(t, s.IsOptionalLetter('ü'))
	assert.False(t, s.IsOptionalLetter('e'))

	bare := domain.Suffix{ID: "lar", Patterns: []string{"lar"}}
	assert.False(t, bare.HasOptionalLetter())
}

func TestStateIsTerminal(t *testing.T) {
	assert.True(t, domain.State{ID: "b", Terminal: true}.IsTerminal())
	assert.True(t, domain.State{ID: "b"}.IsTerminal(), "no transitions means implicitly terminal")
	assert.False(t, domain.State{
		ID:          "a",
		Transitions: []domain.Transition{{SuffixID: "lar", ToStateID: "b"}},
	}.IsTerminal())
}

func TestRuleSetLookups(t *testing.T) {
	rs := &domain.RuleSet{
		Category:       domain.CategoryNoun,
		InitialStateID: "a",
		Suffixes:       map[string]domain.Suffix{"lar": {ID: "lar", Patterns: []string{"lar"}}},
		States:         map[string]domain.State{"a": {ID: "a", Terminal: true}},
	}

	t.Run("known ids resolve", func(t *testing.T) {
		st, err := rs.Initial()
		require.NoError(t, err)
		assert.Equal(t, "a", st.ID)

		sf, err := rs.Suffix("lar")
		require.NoError(t, err)
		assert.Equal(t, "lar", sf.ID)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := rs.State("ghost")
		var stateErr *domain.UnknownStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, domain.CategoryNoun, stateErr.Category)
	})

	t.Run("unknown suffix", func(t *testing.T) {
		_, err := rs.Suffix("ghost")
		var suffixErr *domain.UnknownSuffixError
		require.ErrorAs(t, err, &suffixErr)
		assert.Equal(t, "ghost", suffixErr.SuffixID)
	})

	t.Run("emptiness", func(t *testing.T) {
		assert.True(t, (*domain.RuleSet)(nil).Empty())
		assert.True(t, (&domain.RuleSet{}).Empty())
		assert.False(t, rs.Empty())
	})
}

func TestWordSet(t *testing.T) {
	set := domain.NewWordSet("ev", "su")
	assert.True(t, set.Contains("ev"))
	assert.False(t, set.Contains("kitap"))
	assert.False(t, domain.WordSet(nil).Contains("ev"))
	assert.ElementsMatch(t, []string{"ev", "su"}, set.Words())
}
