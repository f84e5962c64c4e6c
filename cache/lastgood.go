package cache

import (
	"context"
	"time"

	"github.com/jonwraymond/guardrail/boundary"
)

// LastGood pairs a boundary with a store so that fallbacks serve the most
// recent successful value instead of a static default.
type LastGood[T any] struct {
	store Store
	ttl   time.Duration
}

// NewLastGood creates a last-good source backed by store. A zero ttl uses
// the store's default.
func NewLastGood[T any](store Store, ttl time.Duration) *LastGood[T] {
	return &LastGood[T]{store: store, ttl: ttl}
}

// Wrap returns an operation that records every successful result of op
// under key before returning it.
func (lg *LastGood[T]) Wrap(key string, op boundary.Operation[T]) boundary.Operation[T] {
	return func(ctx context.Context) (T, error) {
		result, err := op(ctx)
		if err != nil {
			return result, err
		}
		if err := lg.store.Set(key, result, lg.ttl); err != nil {
			return result, err
		}
		return result, nil
	}
}

// Fallback returns a boundary fallback that serves the last recorded value
// for key, or fallback when no good value is cached.
func (lg *LastGood[T]) Fallback(key string, fallback T) boundary.Fallback[T] {
	return func(ctx context.Context, err error, ec boundary.ErrorContext) (T, error) {
		if v, ok := lg.store.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
		return fallback, nil
	}
}
