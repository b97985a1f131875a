package seqmatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch/observability"
)

// Match reports whether the input sequence is accepted by the automaton.
// It implements parallel NFA simulation: a set of simultaneously active
// states is advanced over the input, taking the epsilon-closure after
// every consumed terminal. The initial active set is the epsilon-closure
// of {start}, computed before any input is consumed; this is what lets
// Null and Repeat accept the empty sequence.
//
// Match is total: any sequence (including empty) produces a definite
// verdict, there are no error conditions. The full sequence must be
// available up front; there is no streaming mode.
//
// The context carries trace propagation for WithTracing; Match does not
// observe cancellation (a verdict is produced in time linear in input
// length times automaton size). A nil context is treated as
// context.Background().
//
// The per-call state set is local to the call, so concurrent Match calls
// on the same automaton are safe.
func (a *Automaton[T]) Match(ctx context.Context, seq []T, opts ...Option) bool {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	matchID := cfg.matchID
	if matchID == "" && (cfg.logger != nil || cfg.tracingEnabled) {
		matchID = uuid.NewString()
	}

	observability.LogMatchStart(cfg.logger, matchID, len(seq))

	var span trace.Span
	if cfg.tracingEnabled {
		ctx, span = cfg.spans.StartMatchSpan(ctx, matchID, len(seq))
	}

	start := time.Now()
	matched := a.simulate(seq, cfg.logger, matchID)
	duration := time.Since(start)

	cfg.metrics.RecordMatch(ctx, matched, len(seq), duration)
	if cfg.tracingEnabled {
		cfg.spans.EndMatchSpan(span, matched)
	}
	observability.LogMatchComplete(cfg.logger, matchID, matched, float64(duration.Milliseconds()))

	return matched
}

// simulate runs the multi-state simulation loop. The logger is only for
// per-step diagnostics; it never influences the verdict.
func (a *Automaton[T]) simulate(seq []T, logger *slog.Logger, matchID string) bool {
	active := make(stateSet, 4)
	active.add(a.start)
	a.closure(active)

	for i, terminal := range seq {
		// A dead automaton never revives: only terminal transitions
		// consume input, so once the active set is empty the verdict
		// is settled regardless of the remaining input.
		if len(active) == 0 {
			return false
		}

		next := make(stateSet, len(active))
		for s := range active {
			for _, tr := range a.states[s].terminals {
				if tr.matcher.Matches(terminal) {
					next.add(tr.target)
				}
			}
		}
		a.closure(next)
		active = next

		observability.LogMatchStep(logger, matchID, i, len(active))
	}

	return active.contains(a.end)
}

// stateSet is a transient set of active state indices. It lives only for
// the duration of one Match call.
type stateSet map[int]struct{}

func (s stateSet) add(state int)           { s[state] = struct{}{} }
func (s stateSet) contains(state int) bool { _, ok := s[state]; return ok }

// closure extends the set with every state reachable via zero or more
// epsilon transitions. Computed as a fixpoint with a worklist; it
// terminates even when epsilons form cycles (Repeat introduces them)
// because the arena is finite and the set only grows.
func (a *Automaton[T]) closure(set stateSet) {
	work := make([]int, 0, len(set))
	for s := range set {
		work = append(work, s)
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, target := range a.states[s].epsilons {
			if !set.contains(target) {
				set.add(target)
				work = append(work, target)
			}
		}
	}
}
