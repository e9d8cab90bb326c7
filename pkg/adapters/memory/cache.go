package memory

import (
	"context"
	"sync"
)

// Cache is a process-local ports.Cache backed by a map. Entries never
// expire; stems are tiny and deterministic, so the map only grows with the
// vocabulary actually seen.
type Cache struct {
	mu    sync.RWMutex
	stems map[string]string
}

// NewCache creates an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{stems: make(map[string]string)}
}

// Get returns the cached stem for word.
func (c *Cache) Get(_ context.Context, word string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stem, ok := c.stems[word]
	return stem, ok, nil
}

// Set records the stem for word.
func (c *Cache) Set(_ context.Context, word, stem string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stems[word] = stem
	return nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stems)
}
