package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records boundary execution metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordExecution records one boundary call with duration and error status.
	RecordExecution(ctx context.Context, meta BoundaryMeta, duration time.Duration, err error)

	// RecordFallback records one exhausted call resolved by the fallback.
	RecordFallback(ctx context.Context, meta BoundaryMeta)

	// RecordRecovery records one call that failed at least once but
	// succeeded within the retry budget.
	RecordRecovery(ctx context.Context, meta BoundaryMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter         metric.Meter
	totalCount    metric.Int64Counter
	errorCount    metric.Int64Counter
	fallbackCount metric.Int64Counter
	recoveryCount metric.Int64Counter
	durationHist  metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"boundary.exec.total",
		metric.WithDescription("Total number of boundary executions"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"boundary.exec.errors",
		metric.WithDescription("Total number of failed boundary executions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	fallbackCount, err := meter.Int64Counter(
		"boundary.exec.fallbacks",
		metric.WithDescription("Total number of exhausted calls resolved by fallback"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	recoveryCount, err := meter.Int64Counter(
		"boundary.exec.recoveries",
		metric.WithDescription("Total number of calls that recovered within the retry budget"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"boundary.exec.duration_ms",
		metric.WithDescription("Boundary execution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:         meter,
		totalCount:    totalCount,
		errorCount:    errorCount,
		fallbackCount: fallbackCount,
		recoveryCount: recoveryCount,
		durationHist:  durationHist,
	}, nil
}

func (m *metricsImpl) attrs(meta BoundaryMeta) metric.MeasurementOption {
	attrs := []attribute.KeyValue{
		attribute.String("boundary.id", meta.ID()),
		attribute.String("boundary.name", meta.Name),
	}
	if meta.Subsystem != "" {
		attrs = append(attrs, attribute.String("boundary.subsystem", meta.Subsystem))
	}
	return metric.WithAttributes(attrs...)
}

// RecordExecution records metrics for one boundary call.
func (m *metricsImpl) RecordExecution(ctx context.Context, meta BoundaryMeta, duration time.Duration, err error) {
	opt := m.attrs(meta)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordFallback increments the fallback counter.
func (m *metricsImpl) RecordFallback(ctx context.Context, meta BoundaryMeta) {
	m.fallbackCount.Add(ctx, 1, m.attrs(meta))
}

// RecordRecovery increments the recovery counter.
func (m *metricsImpl) RecordRecovery(ctx context.Context, meta BoundaryMeta) {
	m.recoveryCount.Add(ctx, 1, m.attrs(meta))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordExecution(ctx context.Context, meta BoundaryMeta, duration time.Duration, err error) {
}
func (m *noopMetrics) RecordFallback(ctx context.Context, meta BoundaryMeta) {}
func (m *noopMetrics) RecordRecovery(ctx context.Context, meta BoundaryMeta) {}
