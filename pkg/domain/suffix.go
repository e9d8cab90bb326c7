package domain

import "strings"

// Suffix describes a single strippable morphological ending.
// Instances are loaded once at startup and treated as immutable.
type Suffix struct {
	ID string `json:"id" yaml:"id"`

	// Name is the abstract notation of the suffix, e.g. "-lAr" or "-(y)Um".
	// It is informational only; matching uses Patterns.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Patterns holds the concrete surface forms of the suffix, matched
	// anchored at the end of a word. Longer forms are tried first.
	Patterns []string `json:"patterns" yaml:"patterns"`

	// CheckHarmony requires the word to satisfy vowel harmony (or appear in
	// the harmony-exception list) before this suffix may be stripped.
	CheckHarmony bool `json:"check_harmony" yaml:"check_harmony"`

	// OptionalLetters lists the connecting letters that may precede the
	// suffix, e.g. "y" for -(y)Um or the four narrow vowels for -(U)m.
	// Empty when the suffix takes no connecting letter.
	OptionalLetters []string `json:"optional_letters,omitempty" yaml:"optional_letters,omitempty"`
}

// Match reports the longest pattern of s that terminates word.
// The empty string and false are returned when no pattern matches.
func (s Suffix) Match(word string) (string, bool) {
	best := ""
	for _, p := range s.Patterns {
		if p == "" {
			continue
		}
		if strings.HasSuffix(word, p) && len(p) > len(best) {
			best = p
		}
	}
	return best, best != ""
}

// HasOptionalLetter reports whether s declares any connecting letter.
func (s Suffix) HasOptionalLetter() bool {
	return len(s.OptionalLetters) > 0
}

// IsOptionalLetter reports whether r is one of the declared connecting
// letters of s.
func (s Suffix) IsOptionalLetter(r rune) bool {
	for _, l := range s.OptionalLetters {
		for _, lr := range l {
			if lr == r {
				return true
			}
		}
	}
	return false
}
