package ports

import "context"

// Cache stores computed stems keyed by word. Stemming is deterministic, so
// entries never need invalidation; backends may still expire them freely.
type Cache interface {
	// Get returns the cached stem for word and whether it was present.
	Get(ctx context.Context, word string) (string, bool, error)

	// Set records the stem for word.
	Set(ctx context.Context, word, stem string) error
}
