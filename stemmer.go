package turkishstemmer

import (
	"fmt"
	"log/slog"

	"github.com/skroutz/turkish-stemmer/internal/runtime"
	"github.com/skroutz/turkish-stemmer/internal/validator"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
	"github.com/skroutz/turkish-stemmer/pkg/ports"
)

// Stemmer reduces Turkish words to stems. Construct it with New; the zero
// value is not usable.
type Stemmer struct {
	loader   ports.TableLoader
	logger   *slog.Logger
	pipeline *runtime.Pipeline
}

// Option configures a Stemmer during New.
type Option func(*Stemmer)

// WithLoader sets the table loader. Defaults to the embedded tables.
func WithLoader(loader ports.TableLoader) Option {
	return func(s *Stemmer) {
		s.loader = loader
	}
}

// WithLogger sets the logger for engine debug output. Defaults to a no-op
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stemmer) {
		s.logger = logger
	}
}

// New loads and validates the suffix tables and builds a ready Stemmer.
// Table faults (unknown states, suffixes without patterns, unreachable
// states) surface here rather than during stemming.
func New(opts ...Option) (*Stemmer, error) {
	s := &Stemmer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.loader == nil {
		s.loader = DefaultLoader()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	rules := make(map[domain.Category]*domain.RuleSet, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		rs, err := s.loader.LoadRuleSet(cat)
		if err != nil {
			return nil, fmt.Errorf("loading %s rules: %w", cat, err)
		}
		rules[cat] = rs
	}

	lists, err := s.loader.LoadWordLists()
	if err != nil {
		return nil, fmt.Errorf("loading word lists: %w", err)
	}

	if err := validator.ValidateAll(rules); err != nil {
		return nil, fmt.Errorf("invalid rule tables: %w", err)
	}

	s.pipeline = runtime.NewPipeline(rules, lists, s.logger)
	return s, nil
}

// Stem returns the stem of word. Words that are not lowercase Turkish, are
// protected, or have fewer than two syllables come back unchanged, as does
// any word for which no candidate survives selection.
func (s *Stemmer) Stem(word string) string {
	stem, err := s.pipeline.Stem(word)
	if err != nil {
		// Validated tables should never produce one; fail open.
		s.logger.Error("stemming failed", "word", word, "err", err)
		return word
	}
	return stem
}

// StemAll stems every word in words, preserving order.
func (s *Stemmer) StemAll(words []string) []string {
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = s.Stem(w)
	}
	return stems
}

// Candidates returns every stem candidate pooled for word, original
// included, before length-based selection.
func (s *Stemmer) Candidates(word string) ([]string, error) {
	return s.pipeline.Candidates(word)
}

// Eligible reports whether word would be stemmed at all.
func (s *Stemmer) Eligible(word string) bool {
	return s.pipeline.Eligible(word)
}
