package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// BoundaryMeta identifies a boundary for telemetry purposes.
type BoundaryMeta struct {
	Name      string   // Boundary name (required)
	Subsystem string   // Owning subsystem (may be empty)
	Tags      []string // Free-form tags (optional)
}

// SpanName returns the deterministic span name for this boundary.
// Format: boundary.exec.<subsystem>.<name> or boundary.exec.<name>
func (m BoundaryMeta) SpanName() string {
	if m.Subsystem != "" {
		return "boundary.exec." + m.Subsystem + "." + m.Name
	}
	return "boundary.exec." + m.Name
}

// ID returns the fully qualified boundary identifier.
func (m BoundaryMeta) ID() string {
	if m.Subsystem != "" {
		return m.Subsystem + "." + m.Name
	}
	return m.Name
}

// Tracer wraps OpenTelemetry tracing with boundary-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a boundary execution.
	StartSpan(ctx context.Context, meta BoundaryMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with boundary metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta BoundaryMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("boundary.id", meta.ID()),
		attribute.String("boundary.name", meta.Name),
		attribute.Bool("boundary.error", false), // Updated in EndSpan if error
	}

	if meta.Subsystem != "" {
		attrs = append(attrs, attribute.String("boundary.subsystem", meta.Subsystem))
	}
	if len(meta.Tags) > 0 {
		attrs = append(attrs, attribute.StringSlice("boundary.tags", meta.Tags))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("boundary.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta BoundaryMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
