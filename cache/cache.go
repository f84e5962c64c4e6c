package cache

import (
	"context"
	"errors"
	"time"
)

// MaxKeyLength is the longest key a store accepts.
const MaxKeyLength = 512

var (
	// ErrEmptyKey indicates an empty cache key.
	ErrEmptyKey = errors.New("cache: key is empty")

	// ErrKeyTooLong indicates a key longer than MaxKeyLength.
	ErrKeyTooLong = errors.New("cache: key exceeds maximum length")
)

// Store is the interface cache backends implement.
type Store interface {
	// Get returns the value for key and whether it was present and fresh.
	Get(key string) (any, bool)

	// Set stores value under key. A zero ttl uses the store's default.
	Set(key string, value any, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string)

	// GetOrFill returns the cached value for key, or runs load once to
	// produce and cache it. Concurrent calls for the same key share a
	// single load.
	GetOrFill(ctx context.Context, key string, ttl time.Duration, load LoadFunc) (any, error)
}

// LoadFunc produces a value for GetOrFill on cache miss.
type LoadFunc func(ctx context.Context) (any, error)

// ValidateKey checks that key is usable as a cache key.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	return nil
}
