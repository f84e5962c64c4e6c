package cache

import "time"

const (
	// DefaultTTL is used when a store is configured without one.
	DefaultTTL = 5 * time.Minute

	// MaxTTL caps how long any entry may live.
	MaxTTL = 24 * time.Hour
)

// EffectiveTTL resolves the ttl to use for an entry: zero or negative
// falls back to defaultTTL, and anything above MaxTTL is clamped.
func EffectiveTTL(ttl, defaultTTL time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if ttl > MaxTTL {
		ttl = MaxTTL
	}
	return ttl
}
