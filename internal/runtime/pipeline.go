package runtime

import (
	"fmt"
	"log/slog"

	"github.com/skroutz/turkish-stemmer/internal/phonology"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// Pipeline chains the three suffix machines over a growing candidate pool:
// nominal-verb suffixes first, then noun suffixes, then derivational ones.
// Each stage runs against every candidate collected so far, and the pooled
// results (plus the original word) go to the selector.
type Pipeline struct {
	machines []*Stripper
	lists    *domain.WordLists
	logger   *slog.Logger
}

// NewPipeline wires the pipeline from loaded rule sets and word lists.
// Missing categories are skipped; an entirely empty map yields a pipeline
// that returns every word unchanged.
func NewPipeline(rules map[domain.Category]*domain.RuleSet, lists *domain.WordLists, logger *slog.Logger) *Pipeline {
	if lists == nil {
		lists = &domain.WordLists{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	eval := NewEvaluator(lists)
	machines := make([]*Stripper, 0, len(rules))
	for _, cat := range domain.Categories() {
		rs, ok := rules[cat]
		if !ok || rs.Empty() {
			continue
		}
		machines = append(machines, NewStripper(rs, eval, logger))
	}

	return &Pipeline{machines: machines, lists: lists, logger: logger}
}

// Eligible reports whether word is stemmed at all: lowercase Turkish
// letters only, not protected, and more than one syllable.
func (p *Pipeline) Eligible(word string) bool {
	return phonology.IsTurkish(word) &&
		!p.lists.Protected.Contains(word) &&
		phonology.CountSyllables(word) > 1
}

// Stem reduces word to its selected stem. Ineligible words come back
// unchanged. An error indicates a rule-set configuration fault.
func (p *Pipeline) Stem(word string) (string, error) {
	if !p.Eligible(word) {
		return word, nil
	}

	pool := newStemSet()
	pool.add(word)

	for _, m := range p.machines {
		// Snapshot: each stage runs over everything pooled so far.
		for _, cand := range pool.items() {
			out, err := m.Strip(cand)
			if err != nil {
				return "", fmt.Errorf("stemming %q: %w", word, err)
			}
			for _, stem := range out {
				pool.add(stem)
			}
		}
	}

	stem := SelectStem(pool.items(), word, p.lists)
	p.logger.Debug("word stemmed", "word", word, "stem", stem, "candidates", len(pool.items()))
	return stem, nil
}

// Candidates returns the full pooled candidate set for word, original
// included, before selection. Useful for inspection and debugging.
func (p *Pipeline) Candidates(word string) ([]string, error) {
	if !p.Eligible(word) {
		return []string{word}, nil
	}

	pool := newStemSet()
	pool.add(word)
	for _, m := range p.machines {
		for _, cand := range pool.items() {
			out, err := m.Strip(cand)
			if err != nil {
				return nil, fmt.Errorf("stemming %q: %w", word, err)
			}
			for _, stem := range out {
				pool.add(stem)
			}
		}
	}
	return pool.items(), nil
}
