package phonology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skroutz/turkish-stemmer/internal/phonology"
)

func TestVowels(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"kitaplar", "iaa"},
		{"çocuğuymuşum", "ouuuu"},
		{"ev", "e"},
		{"", ""},
		{"krk", ""},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, phonology.Vowels(tc.word))
		})
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"ev", 1},
		{"araba", 3},
		{"çocuğuymuşum", 5},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, phonology.CountSyllables(tc.word))
		})
	}
}

func TestHasVowelHarmony(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		// Only the last two vowels matter.
		{"kitaplar", true},  // a-a
		{"gözlük", true},    // rounded ö may be followed by ü
		{"çocuğu", true},    // u-u
		{"saatler", false},  // back a followed by front e
		{"okulken", false},  // back u followed by front e
		{"elmalar", true},   // a-a; the earlier e-a break is ignored
		{"kalemim", true},   // e-i
		{"gözlar", false},   // rounded ö may be followed by a, but ö is front and a is back
		{"ev", true},        // fewer than two vowels
		{"", true},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, phonology.HasVowelHarmony(tc.word))
		})
	}
}

func TestDevoice(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"kitab", "kitap"},
		{"ağac", "ağaç"},
		{"ad", "at"},
		{"çocuğ", "çocuk"},
		{"ev", "ev"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, phonology.Devoice(tc.word))
		})
	}
}

func TestIsTurkish(t *testing.T) {
	assert.True(t, phonology.IsTurkish("çocuğuymuşum"))
	assert.True(t, phonology.IsTurkish("ev"))
	assert.False(t, phonology.IsTurkish("Ev"), "uppercase is not accepted")
	assert.False(t, phonology.IsTurkish("wolf"), "w is not a Turkish letter")
	assert.False(t, phonology.IsTurkish("ev1"))
	assert.False(t, phonology.IsTurkish(""))
}

func TestLetterClasses(t *testing.T) {
	assert.True(t, phonology.IsVowel('ı'))
	assert.False(t, phonology.IsVowel('y'))
	assert.True(t, phonology.IsConsonant('ğ'))
	assert.False(t, phonology.IsConsonant('ü'))
	assert.False(t, phonology.IsConsonant('q'), "letters outside the alphabet are neither")
}
