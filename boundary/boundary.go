package boundary

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Operation is the unit of work a boundary protects.
type Operation[T any] func(ctx context.Context) (T, error)

// Fallback produces a degraded result after every attempt has failed.
// Returning a non-nil error aborts the call with that error; fallback
// failures are not retried and are not subject to the Rethrow policy.
type Fallback[T any] func(ctx context.Context, err error, ec ErrorContext) (T, error)

// ErrorHook is notified once per exhausted call, before the fallback runs.
// A panicking hook propagates to the caller.
type ErrorHook func(ctx context.Context, err error, ec ErrorContext)

// Config configures a boundary.
type Config[T any] struct {
	// Name identifies the boundary in error contexts and telemetry.
	// Required, must not be blank.
	Name string

	// MaxRetries is the number of additional attempts after the first.
	// Default: 0 (a single attempt, no retries).
	MaxRetries int

	// RetryDelay is the wait before each retry. No wait precedes the
	// first attempt. Default: 0.
	RetryDelay time.Duration

	// Fallback produces the call result after retries exhaust. Required.
	Fallback Fallback[T]

	// OnError is invoked once per exhausted call, before the fallback.
	OnError ErrorHook

	// Rethrow returns the original operation error to the caller instead
	// of the fallback result. The fallback and all accounting still run
	// first.
	Rethrow bool
}

// Boundary isolates failures of an operation behind retries, a fallback,
// and failure accounting. Create one via New and share it freely; all
// methods are safe for concurrent use.
type Boundary[T any] struct {
	config Config[T]

	now func() time.Time // test seam

	mu       sync.Mutex
	metrics  Metrics
	window   []time.Time // per-attempt failure timestamps, oldest first
	errState bool
}

// New creates a boundary after validating its configuration.
func New[T any](config Config[T]) (*Boundary[T], error) {
	if strings.TrimSpace(config.Name) == "" {
		return nil, ErrMissingName
	}
	if config.Fallback == nil {
		return nil, ErrMissingFallback
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryDelay < 0 {
		config.RetryDelay = 0
	}

	return &Boundary[T]{
		config: config,
		now:    time.Now,
	}, nil
}

// Name returns the boundary's identifier.
func (b *Boundary[T]) Name() string {
	return b.config.Name
}

// Config returns the boundary's configuration.
func (b *Boundary[T]) Config() Config[T] {
	return b.config
}

// CallOption attaches per-call data to an Execute invocation.
type CallOption func(*callState)

type callState struct {
	fields map[string]any
}

// WithFields merges the given fields into the error context built for a
// failed call.
func WithFields(fields map[string]any) CallOption {
	return func(cs *callState) {
		for k, v := range fields {
			cs.setField(k, v)
		}
	}
}

// WithField attaches a single error-context field.
func WithField(key string, value any) CallOption {
	return func(cs *callState) {
		cs.setField(key, value)
	}
}

func (cs *callState) setField(key string, value any) {
	if cs.fields == nil {
		cs.fields = make(map[string]any)
	}
	cs.fields[key] = value
}

// Execute runs op, retrying on failure up to MaxRetries additional times
// with RetryDelay between attempts.
//
// The first success ends the call immediately; if a prior attempt had
// failed, the recovery counter is bumped. When every attempt fails, the
// boundary records the exhausted call, notifies OnError, invokes the
// fallback, and returns the fallback's value — or the original operation
// error when Rethrow is set.
//
// Context cancellation observed during a retry wait stops further attempts
// and resolves the call as exhausted with the last operation error.
func (b *Boundary[T]) Execute(ctx context.Context, op Operation[T], opts ...CallOption) (T, error) {
	var cs callState
	for _, opt := range opts {
		opt(&cs)
	}

	var lastErr error
	failed := false

	for attempt := 0; attempt <= b.config.MaxRetries; attempt++ {
		if attempt > 0 && b.config.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return b.resolve(ctx, lastErr, cs.fields)
			case <-time.After(b.config.RetryDelay):
			}
		}

		result, err := b.attempt(ctx, op)
		if err == nil {
			if failed {
				b.mu.Lock()
				b.metrics.RecoveryCount++
				b.mu.Unlock()
			}
			return result, nil
		}

		failed = true
		lastErr = err
		b.recordAttemptFailure()
	}

	return b.resolve(ctx, lastErr, cs.fields)
}

// attempt invokes op, normalizing a panic into a *PanicError.
func (b *Boundary[T]) attempt(ctx context.Context, op Operation[T]) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return op(ctx)
}

// recordAttemptFailure appends the current timestamp to the error window.
// Every failed attempt counts toward the rate, not just exhausted calls.
func (b *Boundary[T]) recordAttemptFailure() {
	now := b.now()

	b.mu.Lock()
	b.window = append(b.window, now)
	b.pruneLocked(now)
	b.mu.Unlock()
}

// resolve handles an exhausted call: accounting, error state, hooks,
// fallback, and the rethrow policy, in that order.
func (b *Boundary[T]) resolve(ctx context.Context, opErr error, fields map[string]any) (T, error) {
	now := b.now()
	ec := b.newErrorContext(now, opErr, fields)

	b.mu.Lock()
	b.metrics.ErrorCount++
	// Fallback runs unconditionally on exhaustion, so FallbackCount
	// tracks ErrorCount.
	b.metrics.FallbackCount++
	b.metrics.LastErrorAt = now
	b.pruneLocked(now)
	b.metrics.ErrorRate = len(b.window)
	b.errState = true
	b.mu.Unlock()

	if b.config.OnError != nil {
		b.config.OnError(ctx, opErr, ec)
	}

	result, err := b.config.Fallback(ctx, opErr, ec)
	if err != nil {
		var zero T
		return zero, err
	}

	if b.config.Rethrow {
		var zero T
		return zero, opErr
	}
	return result, nil
}

func (b *Boundary[T]) newErrorContext(now time.Time, err error, fields map[string]any) ErrorContext {
	ec := ErrorContext{
		Boundary:  b.config.Name,
		Timestamp: now,
	}

	var pe *PanicError
	if errors.As(err, &pe) {
		ec.Stack = string(pe.Stack)
	} else {
		ec.Stack = string(debug.Stack())
	}

	if len(fields) > 0 {
		ec.Fields = make(map[string]any, len(fields))
		for k, v := range fields {
			ec.Fields[k] = v
		}
	}
	return ec
}
