// Package redis provides a Redis-backed cache of conversion results for
// server mode, keyed by a digest of the source text.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/tmsim/tmconv/pkg/domain"
)

// ErrCacheMiss is returned when no cached configuration exists for a source.
var ErrCacheMiss = errors.New("conversion not cached")

// Cache stores assembled configurations in Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached conversions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached conversions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "tmconv:conversion:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Key derives the cache key for a source text.
func (c *Cache) Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Put stores the configuration produced from source.
func (c *Cache) Put(ctx context.Context, source string, cfg *domain.Configuration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.client.Set(ctx, c.Key(source), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves the cached configuration for source.
// Returns ErrCacheMiss when the source has not been converted before
// (or its entry expired).
func (c *Cache) Get(ctx context.Context, source string) (*domain.Configuration, error) {
	val, err := c.client.Get(ctx, c.Key(source)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var cfg domain.Configuration
	if err := json.Unmarshal([]byte(val), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
