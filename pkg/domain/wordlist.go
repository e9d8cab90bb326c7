package domain

// WordSet is a fixed set of words with O(1) membership checks.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from the given words.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a member of the set.
// A nil set contains nothing.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the members of the set in unspecified order.
func (s WordSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

// WordLists groups the externally supplied word lists the stemmer consults.
// Like the rule sets, word lists are loaded once and read-only afterwards.
type WordLists struct {
	// Protected words are never stemmed; the pipeline's eligibility check
	// returns them unchanged.
	Protected WordSet

	// HarmonyExceptions may be stemmed by harmony-checked suffixes even
	// when they violate vowel harmony (mostly loanwords).
	HarmonyExceptions WordSet

	// DevoicingExceptions keep their final consonant as-is during the
	// selector's devoicing step (e.g. "ad" stays "ad", not "at").
	DevoicingExceptions WordSet

	// Overrides are preferred stems: if present among the ranked
	// candidates they win regardless of rank.
	Overrides WordSet
}
