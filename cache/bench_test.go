package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// BenchmarkMemoryStore_Get_Hit measures cache hit performance.
func BenchmarkMemoryStore_Get_Hit(b *testing.B) {
	store := NewMemoryStore(MemoryStoreConfig{})
	_ = store.Set("key", "value", time.Hour)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get("key")
	}
}

// BenchmarkMemoryStore_Get_Miss measures cache miss performance.
func BenchmarkMemoryStore_Get_Miss(b *testing.B) {
	store := NewMemoryStore(MemoryStoreConfig{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get("missing")
	}
}

// BenchmarkMemoryStore_Set measures write performance.
func BenchmarkMemoryStore_Set(b *testing.B) {
	store := NewMemoryStore(MemoryStoreConfig{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Set(fmt.Sprintf("key-%d", i), "value", time.Hour)
	}
}

// BenchmarkMemoryStore_GetOrFill_Hit measures fill-path overhead on hits.
func BenchmarkMemoryStore_GetOrFill_Hit(b *testing.B) {
	store := NewMemoryStore(MemoryStoreConfig{})
	ctx := context.Background()
	load := func(ctx context.Context) (any, error) { return "value", nil }
	_, _ = store.GetOrFill(ctx, "key", time.Hour, load)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.GetOrFill(ctx, "key", time.Hour, load)
	}
}

// BenchmarkMemoryStore_Concurrent measures mixed concurrent operations.
func BenchmarkMemoryStore_Concurrent(b *testing.B) {
	store := NewMemoryStore(MemoryStoreConfig{})
	for i := 0; i < 100; i++ {
		_ = store.Set(fmt.Sprintf("key-%d", i), "value", time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("key-%d", i%100)
			if i%4 == 0 {
				_ = store.Set(key, "new-value", time.Hour)
			} else {
				_, _ = store.Get(key)
			}
			i++
		}
	})
}

// BenchmarkValidateKey measures key validation.
func BenchmarkValidateKey(b *testing.B) {
	key := "quote:ACME"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateKey(key)
	}
}
