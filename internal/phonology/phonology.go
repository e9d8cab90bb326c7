// Package phonology implements the letter classification, syllable counting
// and vowel-harmony rules the stemmer is built on.
//
// Turkish is strictly phonetic: every vowel opens a syllable, so counting
// syllables is counting vowels. Vowel harmony constrains which vowel may
// follow which, and the stemmer uses it to reject suffix readings that no
// native inflection would produce.
package phonology

import "unicode/utf8"

// Vowels returns the vowels of word in order, consonants removed.
func Vowels(word string) string {
	out := make([]rune, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		if vowels[r] {
			out = append(out, r)
		}
	}
	return string(out)
}

// CountSyllables returns the syllable count of word, which in Turkish equals
// its vowel count.
func CountSyllables(word string) int {
	n := 0
	for _, r := range word {
		if vowels[r] {
			n++
		}
	}
	return n
}

// HasVowelHarmony reports whether the last two vowels of word agree in both
// roundness and frontness. Words with fewer than two vowels trivially
// satisfy harmony.
func HasVowelHarmony(word string) bool {
	vs := []rune(Vowels(word))
	if len(vs) < 2 {
		return true
	}
	prev, last := vs[len(vs)-2], vs[len(vs)-1]
	return hasRoundnessHarmony(prev, last) && hasFrontnessHarmony(prev, last)
}

// hasRoundnessHarmony: an unrounded vowel must be followed by an unrounded
// one; a rounded vowel by one of a, e, u, ü.
func hasRoundnessHarmony(prev, last rune) bool {
	if prev == 0 || last == 0 {
		return true
	}
	if unroundedVowels[prev] {
		return unroundedVowels[last]
	}
	return roundedFollowers[last]
}

// hasFrontnessHarmony: front follows front, back follows back.
func hasFrontnessHarmony(prev, last rune) bool {
	if prev == 0 || last == 0 {
		return true
	}
	if frontVowels[prev] {
		return frontVowels[last]
	}
	return backVowels[last]
}

// Devoice applies final-consonant devoicing: a word-final b, c, d or ğ
// becomes p, ç, t or k. Other words are returned unchanged.
func Devoice(word string) string {
	last, size := utf8.DecodeLastRuneInString(word)
	repl, ok := devoiced[last]
	if !ok {
		return word
	}
	return word[:len(word)-size] + string(repl)
}

// LastRune returns the final rune of word, or 0 for the empty string.
func LastRune(word string) rune {
	if word == "" {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(word)
	return r
}
