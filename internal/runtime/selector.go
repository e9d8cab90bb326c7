package runtime

import (
	"sort"
	"unicode/utf8"

	"github.com/skroutz/turkish-stemmer/internal/phonology"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// averageStemLength is the heuristic target the ranking pulls towards:
// candidates closest to this many letters rank first.
const averageStemLength = 4

// SelectStem picks the final stem out of the pooled candidates.
//
// The original word and zero-syllable candidates are dropped, final
// consonants are devoiced (unless excepted), and the survivors are ranked by
// distance to averageStemLength with ties going to the shorter word. A
// candidate on the override list wins over the ranking. An empty pool falls
// back to the original word.
func SelectStem(candidates []string, original string, lists *domain.WordLists) string {
	if lists == nil {
		lists = &domain.WordLists{}
	}

	ranked := newStemSet()
	for _, c := range candidates {
		if c == original {
			continue
		}
		if phonology.CountSyllables(c) == 0 {
			continue
		}
		if !lists.DevoicingExceptions.Contains(c) {
			c = phonology.Devoice(c)
		}
		ranked.add(c)
	}

	items := ranked.items()
	if len(items) == 0 {
		return original
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, dj := rankDistance(items[i]), rankDistance(items[j])
		if di != dj {
			return di < dj
		}
		return utf8.RuneCountInString(items[i]) < utf8.RuneCountInString(items[j])
	})

	for _, c := range items {
		if lists.Overrides.Contains(c) {
			return c
		}
	}
	return items[0]
}

func rankDistance(word string) int {
	d := utf8.RuneCountInString(word) - averageStemLength
	if d < 0 {
		return -d
	}
	return d
}
