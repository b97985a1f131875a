package seqmatch

import (
	"log/slog"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch/observability"
)

// config holds observability configuration shared by Compile and Match.
// Compilation and matching are pure computations; options never alter the
// verdict, only what gets logged, measured, and traced around it.
type config struct {
	logger         *slog.Logger
	matchID        string
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
}

// defaultConfig returns the default configuration: no logging, no-op
// metrics and spans.
func defaultConfig() config {
	return config{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures observability for Compile and Match calls.
type Option func(*config)

// WithLogger enables structured logging via the given slog logger.
// Match logs start/completion at Info and the per-step active-state set
// size at Debug. A nil logger disables logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMatchID sets the identifier used to correlate logs and spans for a
// Match call. If logging or tracing is enabled and no ID is set, a UUID
// is generated per call. Ignored by Compile.
func WithMatchID(id string) Option {
	return func(c *config) {
		c.matchID = id
	}
}

// WithMetrics enables OpenTelemetry metrics recording.
// The recorder uses the global OTel meter provider; configure the
// provider before enabling.
func WithMetrics(enabled bool) Option {
	return func(c *config) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry span creation around Compile and
// Match. The spans use the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(c *config) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}
