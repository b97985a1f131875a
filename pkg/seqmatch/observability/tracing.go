package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the seqmatch tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("seqmatch")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCompileSpan starts a span for an expression compilation.
	StartCompileSpan(ctx context.Context) (context.Context, trace.Span)

	// StartMatchSpan starts a span for a match call.
	StartMatchSpan(ctx context.Context, matchID string, inputLen int) (context.Context, trace.Span)

	// EndCompileSpan completes a compile span, recording the state count.
	EndCompileSpan(span trace.Span, stateCount int)

	// EndMatchSpan completes a match span, recording the verdict.
	EndMatchSpan(span trace.Span, matched bool)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCompileSpan starts a span for an expression compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "seqmatch.compile",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartMatchSpan starts a span for a match call.
func (m *otelSpanManager) StartMatchSpan(ctx context.Context, matchID string, inputLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "seqmatch.match",
		trace.WithAttributes(
			attribute.String("match.id", matchID),
			attribute.Int("match.input_length", inputLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndCompileSpan completes a compile span.
func (m *otelSpanManager) EndCompileSpan(span trace.Span, stateCount int) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int("automaton.states", stateCount))
	span.SetStatus(codes.Ok, "")
	span.End()
}

// EndMatchSpan completes a match span.
// Matching has no error conditions, so the span always ends Ok; the
// verdict is an attribute, not a status.
func (m *otelSpanManager) EndMatchSpan(span trace.Span, matched bool) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Bool("match.matched", matched))
	span.SetStatus(codes.Ok, "")
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
