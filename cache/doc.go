// Package cache provides a small TTL cache and a last-good-value fallback
// source for boundaries.
//
// The typical pairing: a boundary wraps calls to a flaky backend, and a
// LastGood records every successful result so the boundary's fallback can
// serve the most recent good value instead of a static default.
//
// # Basic Usage
//
//	store := cache.NewMemoryStore(cache.MemoryStoreConfig{
//	    DefaultTTL: 5 * time.Minute,
//	})
//
//	store.Set("user:42", profile, 0) // 0 uses the default TTL
//	if v, ok := store.Get("user:42"); ok {
//	    profile = v.(Profile)
//	}
//
// # Deduplicated Loads
//
// GetOrFill collapses concurrent loads for the same key into a single call:
//
//	v, err := store.GetOrFill(ctx, "quote:ACME", 0, func(ctx context.Context) (any, error) {
//	    return fetchQuote(ctx, "ACME")
//	})
//
// # Last-Good Fallback
//
//	lg := cache.NewLastGood[Quote](store, 10*time.Minute)
//
//	b, _ := boundary.New(boundary.Config[Quote]{
//	    Name:     "quotes",
//	    Fallback: lg.Fallback("quote:ACME", Quote{}),
//	})
//
//	quote, _ := b.Execute(ctx, lg.Wrap("quote:ACME", fetchACME))
package cache
