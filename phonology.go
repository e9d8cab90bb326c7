package turkishstemmer

import "github.com/skroutz/turkish-stemmer/internal/phonology"

// Vowels returns the vowels of word in order.
func Vowels(word string) string {
	return phonology.Vowels(word)
}

// CountSyllables returns the syllable count of word, which in Turkish equals
// its vowel count.
func CountSyllables(word string) int {
	return phonology.CountSyllables(word)
}

// HasVowelHarmony reports whether the last two vowels of word satisfy
// roundness and frontness harmony. Words with fewer than two vowels are
// trivially harmonic.
func HasVowelHarmony(word string) bool {
	return phonology.HasVowelHarmony(word)
}

// Devoice applies final-consonant devoicing to word (b->p, c->ç, d->t,
// ğ->k).
func Devoice(word string) string {
	return phonology.Devoice(word)
}

// IsTurkish reports whether word consists solely of lowercase letters of
// the Turkish alphabet.
func IsTurkish(word string) bool {
	return phonology.IsTurkish(word)
}
