/*
Package seqmatch is a generic pattern-matching engine over arbitrary
terminal alphabets.

# Overview

seqmatch compiles a declarative pattern, an expression tree of terminal,
sequence, choice, repetition, and empty variants, into a nondeterministic
finite automaton (Thompson-style construction), then simulates that
automaton against an input sequence to decide membership. The engine is
generic over the terminal type: anything with a Matcher implementation can
be matched, from runes to musical notes.

The engine answers a single boolean question per input sequence. There is
no submatch extraction, no greedy-vs-lazy distinction, no anchors, and no
streaming mode.

# Basic Usage

Front-ends supply a terminal type and matchers; the core compiles and
matches:

	digit := seqmatch.MatcherFunc[rune](unicode.IsDigit)

	// One or more digits.
	expr := seqmatch.OneOrMore(seqmatch.Terminal[rune](digit))

	automaton := expr.Compile()
	automaton.Match(ctx, []rune("2026")) // true
	automaton.Match(ctx, []rune(""))     // false

The charclass and melody subpackages are complete front-ends for character
patterns and melodic patterns respectively.

# Expressions

Five variants form a closed set:

  - Terminal(m): one terminal accepted by matcher m
  - Sequence(e...): concatenation, in order
  - Choice(e...): any one alternative
  - Repeat(e): zero or more occurrences
  - Null: only the empty sequence

OneOrMore and ZeroOrOne are sugar over these; they introduce no new
automaton constructions.

# Repeat and Choice Composability

Repeat compiles by reusing its entry/exit state pair as the loop's shared
join point rather than allocating dedicated loop states. This keeps the
automaton compact but makes sibling Repeats under a Choice share their
loop states: Choice(Repeat(a), Repeat(b)) accepts every interleaving of
a's and b's, not just pure runs of one alternative. Repeat(Choice(a, b))
behaves as expected. Callers who need "a* or b*" exactly should lift the
choice above separately compiled automata.

# Observability

Compile and Match accept options for structured logging (log/slog),
OpenTelemetry metrics, and OpenTelemetry tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	matched := automaton.Match(ctx, input,
	    seqmatch.WithLogger(logger),
	    seqmatch.WithMetrics(true),
	    seqmatch.WithTracing(true))

Diagnostics never affect the verdict; with no options both operations are
pure computations with no I/O.

# Thread Safety

  - Expr is immutable after construction and safe to compile repeatedly.
  - Automaton is immutable after compilation; concurrent Match calls on
    one automaton are safe.
  - The simulation's active-state set is local to each Match call.

# Subpackages

  - charclass: character-alphabet front-end with a small pattern-text syntax
  - melody: musical interval/duration front-end
  - patternfile: YAML/JSON documents of named character patterns
  - patternset: thread-safe registry of named compiled patterns
  - patternstore: pattern persistence (memory, SQLite)
  - observability: logging, metrics, and tracing helpers
*/
package seqmatch
