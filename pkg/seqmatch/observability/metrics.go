package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records seqmatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a compilation with the resulting state count.
	RecordCompile(ctx context.Context, stateCount int, duration time.Duration)

	// RecordMatch records a match call with its verdict and input length.
	RecordMatch(ctx context.Context, matched bool, inputLen int, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	compileCount  metric.Int64Counter
	compileStates metric.Int64Histogram
	matchCount    metric.Int64Counter
	matchLatency  metric.Float64Histogram
	matchInputLen metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("seqmatch")

	compileCount, err := meter.Int64Counter("seqmatch.compile.count",
		metric.WithDescription("Number of expression compilations"),
	)
	if err != nil {
		return nil, err
	}

	compileStates, err := meter.Int64Histogram("seqmatch.compile.states",
		metric.WithDescription("State count of compiled automata"),
	)
	if err != nil {
		return nil, err
	}

	matchCount, err := meter.Int64Counter("seqmatch.match.count",
		metric.WithDescription("Number of match calls"),
	)
	if err != nil {
		return nil, err
	}

	matchLatency, err := meter.Float64Histogram("seqmatch.match.latency_ms",
		metric.WithDescription("Match latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	matchInputLen, err := meter.Int64Histogram("seqmatch.match.input_length",
		metric.WithDescription("Input sequence length per match call"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		compileCount:  compileCount,
		compileStates: compileStates,
		matchCount:    matchCount,
		matchLatency:  matchLatency,
		matchInputLen: matchInputLen,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCompile records a compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, stateCount int, duration time.Duration) {
	m.compileCount.Add(ctx, 1)
	m.compileStates.Record(ctx, int64(stateCount))
}

// RecordMatch records a match call.
func (m *otelMetrics) RecordMatch(ctx context.Context, matched bool, inputLen int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("matched", matched),
	}
	m.matchCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.matchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.matchInputLen.Record(ctx, int64(inputLen), metric.WithAttributes(attrs...))
}
