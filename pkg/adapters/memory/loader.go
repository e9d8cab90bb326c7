package memory

import (
	"fmt"

	"github.com/skroutz/turkish-stemmer/pkg/domain"
)

// Loader implements ports.TableLoader from in-memory domain objects.
// It is the natural loader for tests and for hosts that build their own
// tables programmatically.
type Loader struct {
	rules map[domain.Category]*domain.RuleSet
	lists *domain.WordLists
}

// NewLoader creates a Loader serving the given rule sets and word lists.
// A nil lists value serves empty word lists.
func NewLoader(rules map[domain.Category]*domain.RuleSet, lists *domain.WordLists) *Loader {
	if lists == nil {
		lists = &domain.WordLists{}
	}
	return &Loader{rules: rules, lists: lists}
}

// NewFromRuleSets creates a Loader from rule sets alone, keyed by their own
// Category field. This handles the map bookkeeping automatically, improving
// DX for tests.
func NewFromRuleSets(sets ...*domain.RuleSet) (*Loader, error) {
	rules := make(map[domain.Category]*domain.RuleSet, len(sets))
	for _, rs := range sets {
		if rs.Category == "" {
			return nil, fmt.Errorf("rule set missing category")
		}
		if _, dup := rules[rs.Category]; dup {
			return nil, fmt.Errorf("duplicate rule set for category %s", rs.Category)
		}
		rules[rs.Category] = rs
	}
	return NewLoader(rules, nil), nil
}

// WithWordLists sets the word lists the loader serves and returns it.
func (l *Loader) WithWordLists(lists *domain.WordLists) *Loader {
	l.lists = lists
	return l
}

// LoadRuleSet retrieves the rule set for one category.
func (l *Loader) LoadRuleSet(category domain.Category) (*domain.RuleSet, error) {
	rs, ok := l.rules[category]
	if !ok {
		return nil, fmt.Errorf("rule set not found: %s", category)
	}
	return rs, nil
}

// LoadWordLists retrieves the configured word lists.
func (l *Loader) LoadWordLists() (*domain.WordLists, error) {
	return l.lists, nil
}
