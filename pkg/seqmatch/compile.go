package seqmatch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch/observability"
)

// Compile lowers the expression into an Automaton using Thompson-style
// construction. Compilation is deterministic and total: every well-formed
// expression tree compiles, there is no error return. State count is
// linear in the size of the tree.
//
// Construction per node, between an entry/exit state pair:
//
//   - Terminal(m): a terminal transition entry -> exit guarded by m.
//   - Sequence(e0..en-1): one fresh state per element, threaded
//     entry -(e0)-> s0 -(e1)-> ... -(en-1)-> sn-1, then an epsilon
//     sn-1 -> exit. An empty sequence is an epsilon entry -> exit.
//   - Choice(e0..en-1): every alternative expanded between the same
//     entry/exit pair; no extra states.
//   - Repeat(e): epsilon entry -> exit (zero occurrences), epsilon
//     exit -> entry (loop back), then e expanded between the same
//     entry/exit pair.
//   - Null: an epsilon entry -> exit.
//
// Repeat reuses the shared entry/exit pair as the loop's join point
// instead of allocating dedicated loop states. As a consequence,
// alternation branches that are each a Repeat share their loop states:
// Choice(Repeat(a), Repeat(b)) accepts interleavings such as "ab". See
// the package documentation for details.
//
// Options only attach observability (logging, metrics, tracing); they do
// not change the construction.
//
// Panics if e is nil.
func (e *Expr[T]) Compile(opts ...Option) *Automaton[T] {
	if e == nil {
		panic("seqmatch: cannot compile nil expression")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := context.Background()
	var span trace.Span
	if cfg.tracingEnabled {
		ctx, span = cfg.spans.StartCompileSpan(ctx)
	}

	start := time.Now()

	a := &Automaton[T]{}
	a.start = a.addState()
	a.end = a.addState()
	a.expand(e, a.start, a.end)

	duration := time.Since(start)
	cfg.metrics.RecordCompile(ctx, a.StateCount(), duration)
	if cfg.tracingEnabled {
		cfg.spans.EndCompileSpan(span, a.StateCount())
	}
	observability.LogCompile(cfg.logger, a.StateCount(), float64(duration.Milliseconds()))

	return a
}

// expand lowers expr into the sub-graph between entry and exit. Each node
// visits its children exactly once, so recursion depth is bounded by the
// expression tree depth.
func (a *Automaton[T]) expand(expr *Expr[T], entry, exit int) {
	switch expr.op {
	case opTerminal:
		a.addTerminal(entry, exit, expr.matcher)

	case opSequence:
		if len(expr.children) == 0 {
			a.addEpsilon(entry, exit)
			return
		}
		prev := entry
		for _, child := range expr.children {
			next := a.addState()
			a.expand(child, prev, next)
			prev = next
		}
		a.addEpsilon(prev, exit)

	case opChoice:
		for _, child := range expr.children {
			a.expand(child, entry, exit)
		}

	case opRepeat:
		a.addEpsilon(entry, exit)
		a.addEpsilon(exit, entry)
		a.expand(expr.children[0], entry, exit)

	case opNull:
		a.addEpsilon(entry, exit)
	}
}
