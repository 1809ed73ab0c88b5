package providers

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider defines the interface for caching operations
type CacheProvider interface {
	// Get retrieves a value from cache, returning ErrCacheMiss when absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes one or more values from cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// SetNX stores a value only when the key does not exist yet
	SetNX(ctx context.Context, key string, value []byte, expirationSeconds int) (bool, error)
}

// HTTPCacheKeyPrefix prefixes response cache entries written by the HTTP layer
const HTTPCacheKeyPrefix = "http:cache:"
