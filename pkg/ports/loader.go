package ports

import "github.com/skroutz/turkish-stemmer/pkg/domain"

// TableLoader defines how the stemmer obtains its rule sets and word lists.
// This keeps the data source (embedded defaults, filesystem, tests)
// decoupled from the engine.
type TableLoader interface {
	// LoadRuleSet retrieves the suffix table and state graph for one
	// category.
	LoadRuleSet(category domain.Category) (*domain.RuleSet, error)

	// LoadWordLists retrieves the protected-word, harmony-exception,
	// devoicing-exception and override lists.
	LoadWordLists() (*domain.WordLists, error)
}
