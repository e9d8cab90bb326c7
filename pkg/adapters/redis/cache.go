// Package redis provides a Redis-backed stem cache for server deployments
// where many instances share one vocabulary.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.Cache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached stems.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached stems.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "stemmer:stem:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(word string) string {
	return c.prefix + word
}

// Get returns the cached stem for word.
func (c *Cache) Get(ctx context.Context, word string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(word)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, true, nil
}

// Set records the stem for word.
func (c *Cache) Set(ctx context.Context, word, stem string) error {
	if err := c.client.Set(ctx, c.key(word), stem, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
