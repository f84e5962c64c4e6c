package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// MemoryStoreConfig configures a MemoryStore.
type MemoryStoreConfig struct {
	// DefaultTTL is applied when Set or GetOrFill is called with a zero
	// ttl. Defaults to DefaultTTL.
	DefaultTTL time.Duration
}

type entry struct {
	value     any
	expiresAt time.Time
}

// MemoryStore is an in-process TTL cache. Expired entries are removed
// lazily on access.
type MemoryStore struct {
	config MemoryStoreConfig
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]entry

	group singleflight.Group
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(config MemoryStoreConfig) *MemoryStore {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = DefaultTTL
	}
	return &MemoryStore{
		config:  config,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the value for key if present and not expired.
func (s *MemoryStore) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another Set may have refreshed it.
		if cur, ok := s.entries[key]; ok && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the given ttl.
func (s *MemoryStore) Set(key string, value any, ttl time.Duration) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	ttl = EffectiveTTL(ttl, s.config.DefaultTTL)

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Delete removes key from the store.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of entries, including any not yet lazily expired.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrFill returns the cached value for key or loads and caches it.
// Concurrent misses for the same key are collapsed into one load.
func (s *MemoryStore) GetOrFill(ctx context.Context, key string, ttl time.Duration, load LoadFunc) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Another caller may have filled the key while we waited.
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.Set(key, v, ttl); err != nil {
			return nil, err
		}
		return v, nil
	})
	return v, err
}
