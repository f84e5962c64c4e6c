package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/guardrail/boundary"
)

// ExecuteFunc is the signature for operations wrapped by Middleware.
type ExecuteFunc func(ctx context.Context) (any, error)

// Middleware wraps boundary executions with observability (tracing,
// metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ExecuteFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated
//     unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an operation with tracing, metrics, and logging. The result
// composes with boundary.Execute: the wrapped function is the operation a
// boundary protects, so each attempt produces its own span and data point.
func (m *Middleware) Wrap(meta BoundaryMeta, fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		result, err := fn(ctx)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordExecution(ctx, meta, duration, err)

		logger := m.logger.WithBoundary(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Warn(ctx, "boundary attempt failed", fields...)
		} else {
			logger.Debug(ctx, "boundary attempt completed", fields...)
		}

		return result, err
	}
}

// ErrorHook returns a boundary OnError hook that logs each exhausted call
// with its flattened error context and bumps the fallback counter.
func (m *Middleware) ErrorHook(meta BoundaryMeta) boundary.ErrorHook {
	return func(ctx context.Context, err error, ec boundary.ErrorContext) {
		m.metrics.RecordFallback(ctx, meta)

		fields := []Field{
			{Key: "error", Value: err.Error()},
		}
		for k, v := range ec.Map() {
			if k == "stack" {
				// Stacks are noise at this level; the span carries the error.
				continue
			}
			fields = append(fields, Field{Key: k, Value: v})
		}

		m.logger.WithBoundary(meta).Error(ctx, "boundary exhausted retries", fields...)
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
