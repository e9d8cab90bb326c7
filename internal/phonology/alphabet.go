package phonology

// The 29-letter Turkish alphabet, lowercase. The stemmer operates on
// lowercase input only; anything outside this set fails the eligibility
// check upstream.
var alphabet = map[rune]bool{
	'a': true, 'b': true, 'c': true, 'ç': true, 'd': true, 'e': true,
	'f': true, 'g': true, 'ğ': true, 'h': true, 'ı': true, 'i': true,
	'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true,
	'ö': true, 'p': true, 'r': true, 's': true, 'ş': true, 't': true,
	'u': true, 'ü': true, 'v': true, 'y': true, 'z': true,
}

var vowels = map[rune]bool{
	'a': true, 'e': true, 'ı': true, 'i': true,
	'o': true, 'ö': true, 'u': true, 'ü': true,
}

var frontVowels = map[rune]bool{
	'e': true, 'i': true, 'ö': true, 'ü': true,
}

var backVowels = map[rune]bool{
	'a': true, 'ı': true, 'o': true, 'u': true,
}

var roundedVowels = map[rune]bool{
	'o': true, 'ö': true, 'u': true, 'ü': true,
}

var unroundedVowels = map[rune]bool{
	'a': true, 'e': true, 'ı': true, 'i': true,
}

// Vowels that may follow a rounded vowel under roundness harmony.
var roundedFollowers = map[rune]bool{
	'a': true, 'e': true, 'u': true, 'ü': true,
}

// Word-final voiced obstruents and their devoiced counterparts.
var devoiced = map[rune]rune{
	'b': 'p',
	'c': 'ç',
	'd': 't',
	'ğ': 'k',
}

// IsVowel reports whether r is a Turkish vowel.
func IsVowel(r rune) bool {
	return vowels[r]
}

// IsConsonant reports whether r is a Turkish consonant.
func IsConsonant(r rune) bool {
	return alphabet[r] && !vowels[r]
}

// IsTurkish reports whether word consists solely of lowercase Turkish
// letters. The empty string is not Turkish.
func IsTurkish(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !alphabet[r] {
			return false
		}
	}
	return true
}
