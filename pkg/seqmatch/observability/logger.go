// Package observability provides structured logging, metrics, and
// distributed tracing for seqmatch:
//
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Diagnostics are incidental: they never influence a match verdict.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds seqmatch context to a logger.
// Returns a new logger with the match_id field attached.
func EnrichLogger(logger *slog.Logger, matchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("match_id", matchID))
}

// LogCompile logs a completed compilation.
func LogCompile(logger *slog.Logger, stateCount int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression compiled",
		slog.Int("states", stateCount),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogMatchStart logs the start of a match.
func LogMatchStart(logger *slog.Logger, matchID string, inputLen int) {
	if logger == nil {
		return
	}
	logger.Info("match starting",
		slog.String("match_id", matchID),
		slog.Int("input_len", inputLen),
	)
}

// LogMatchComplete logs a match verdict.
func LogMatchComplete(logger *slog.Logger, matchID string, matched bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("match completed",
		slog.String("match_id", matchID),
		slog.Bool("matched", matched),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogMatchStep logs the active-state set size after one consumed terminal.
func LogMatchStep(logger *slog.Logger, matchID string, index, activeStates int) {
	if logger == nil {
		return
	}
	logger.Debug("simulation step",
		slog.String("match_id", matchID),
		slog.Int("index", index),
		slog.Int("active_states", activeStates),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
