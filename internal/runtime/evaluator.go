package runtime

import (
	"unicode/utf8"

	"github.com/skroutz/turkish-stemmer/internal/phonology"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// Evaluation is the outcome of applying one suffix rule to a word.
type Evaluation struct {
	// Matched reports whether the suffix was stripped.
	Matched bool
	// Word is the reduced word, or the input unchanged when not matched.
	Word string
	// Applied is the removed text, connecting letter included.
	Applied string
}

// Evaluator decides whether a suffix rule applies to a word and computes the
// reduced word. It is a pure function over the immutable word lists; a single
// Evaluator may be shared by concurrent callers.
type Evaluator struct {
	lists *domain.WordLists
}

// NewEvaluator creates an Evaluator consulting the given word lists.
func NewEvaluator(lists *domain.WordLists) *Evaluator {
	if lists == nil {
		lists = &domain.WordLists{}
	}
	return &Evaluator{lists: lists}
}

// Evaluate applies suffix to word.
//
// A harmony-checked suffix requires the word to satisfy vowel harmony or be
// listed as a harmony exception. When the suffix declares a connecting
// letter and the reduced word ends in it, boundary phonology decides whether
// the letter is stripped as well: a connecting vowel must follow a
// consonant, a connecting consonant must follow a vowel. An invalid boundary
// reverts the whole step.
func (e *Evaluator) Evaluate(word string, suffix domain.Suffix) Evaluation {
	failed := Evaluation{Word: word}

	// Protected words never stem. The pipeline's eligibility gate already
	// rejects them; re-checked so the evaluator is safe standalone.
	if e.lists.Protected.Contains(word) {
		return failed
	}

	if suffix.CheckHarmony &&
		!phonology.HasVowelHarmony(word) &&
		!e.lists.HarmonyExceptions.Contains(word) {
		return failed
	}

	matched, ok := suffix.Match(word)
	if !ok {
		return failed
	}

	reduced := word[:len(word)-len(matched)]
	applied := matched

	if suffix.HasOptionalLetter() {
		last := phonology.LastRune(reduced)
		if suffix.IsOptionalLetter(last) {
			prev := phonology.LastRune(reduced[:len(reduced)-utf8.RuneLen(last)])
			if !validBoundary(last, prev) {
				return failed
			}
			reduced = reduced[:len(reduced)-utf8.RuneLen(last)]
			applied = string(last) + applied
		}
	}

	return Evaluation{Matched: true, Word: reduced, Applied: applied}
}

// validBoundary checks the phonology around a connecting letter: a vowel
// needs a preceding consonant, a consonant a preceding vowel.
func validBoundary(letter, prev rune) bool {
	if phonology.IsVowel(letter) {
		return phonology.IsConsonant(prev)
	}
	return phonology.IsVowel(prev)
}
