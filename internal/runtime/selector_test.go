package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skroutz/turkish-stemmer/internal/runtime"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

func TestSelectStem_Ranking(t *testing.T) {
	t.Run("closest to the average length wins", func(t *testing.T) {
		got := runtime.SelectStem([]string{"okullar", "okul"}, "okullarda", nil)
		assert.Equal(t, "okul", got)
	})

	t.Run("ties go to the shorter candidate", func(t *testing.T) {
		// kitap and kit are both one letter away from the target length.
		got := runtime.SelectStem([]string{"kitap", "kita", "kit"}, "kita", nil)
		assert.Equal(t, "kit", got)
	})

	t.Run("the original word is never selected from the pool", func(t *testing.T) {
		got := runtime.SelectStem([]string{"kitaplar", "kitap"}, "kitaplar", nil)
		assert.Equal(t, "kitap", got)
	})

	t.Run("empty pool falls back to the original", func(t *testing.T) {
		got := runtime.SelectStem(nil, "kitaplar", nil)
		assert.Equal(t, "kitaplar", got)
		got = runtime.SelectStem([]string{"kitaplar"}, "kitaplar", nil)
		assert.Equal(t, "kitaplar", got)
	})

	t.Run("vowelless candidates are dropped", func(t *testing.T) {
		got := runtime.SelectStem([]string{"krk", "kürk"}, "kürkler", nil)
		assert.Equal(t, "kürk", got)
	})
}

func TestSelectStem_Devoicing(t *testing.T) {
	t.Run("final consonant is devoiced", func(t *testing.T) {
		got := runtime.SelectStem([]string{"kitab"}, "kitabım", nil)
		assert.Equal(t, "kitap", got)
	})

	t.Run("exceptions keep their final consonant", func(t *testing.T) {
		lists := &domain.WordLists{DevoicingExceptions: domain.NewWordSet("ad")}
		got := runtime.SelectStem([]string{"ad"}, "adım", lists)
		assert.Equal(t, "ad", got)
	})
}

func TestSelectStem_Overrides(t *testing.T) {
	lists := &domain.WordLists{Overrides: domain.NewWordSet("ev")}

	t.Run("an override beats a better-ranked candidate", func(t *testing.T) {
		// evler ranks first (5 letters vs 2), ev still wins.
		got := runtime.SelectStem([]string{"evler", "ev"}, "evlerinde", lists)
		assert.Equal(t, "ev", got)
	})

	t.Run("overrides only apply to pooled candidates", func(t *testing.T) {
		got := runtime.SelectStem([]string{"okullar", "okul"}, "okullarda", lists)
		assert.Equal(t, "okul", got, "no override in the pool, ranking decides")
	})
}
