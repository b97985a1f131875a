package seqmatch

import "slices"

// transition is a single guarded edge: the automaton may move to target
// after consuming a terminal accepted by matcher.
//
// Transitions are kept as an ordered list rather than a target-keyed map:
// two alternation branches expanded between the same state pair (e.g.
// Choice(Terminal(a), Terminal(b)) between start and end) produce two
// transitions with the same target, and both must survive.
type transition[T any] struct {
	target  int
	matcher Matcher[T]
}

// state is one entry in the automaton's arena. It owns its outgoing
// terminal transitions and epsilon transitions; incoming edges live on
// the source states.
type state[T any] struct {
	terminals []transition[T]
	epsilons  []int
}

// Automaton is an immutable nondeterministic finite automaton produced by
// compiling an Expr. States are dense zero-based indices into an
// append-only arena; the start state is always 0 and the end (accepting)
// state is always 1. Epsilon transitions may form cycles (introduced
// exclusively by Repeat).
//
// An Automaton is safe for concurrent use: Match calls on the same
// automaton from multiple goroutines need no synchronization.
type Automaton[T any] struct {
	states []state[T]
	start  int
	end    int
}

// Start returns the start state index (always 0).
func (a *Automaton[T]) Start() int {
	return a.start
}

// End returns the accepting state index (always 1).
func (a *Automaton[T]) End() int {
	return a.end
}

// StateCount returns the number of states in the arena.
func (a *Automaton[T]) StateCount() int {
	return len(a.states)
}

// EpsilonTargets returns the states reachable from s via a single epsilon
// transition. The returned slice is a copy; modifying it does not affect
// the automaton. Returns nil for out-of-range states.
func (a *Automaton[T]) EpsilonTargets(s int) []int {
	if s < 0 || s >= len(a.states) {
		return nil
	}
	return slices.Clone(a.states[s].epsilons)
}

// TerminalTargets returns the target states of all terminal transitions
// out of s, in insertion order. A target appears once per transition, so
// duplicates indicate parallel guarded edges. The returned slice is a
// copy. Returns nil for out-of-range states.
func (a *Automaton[T]) TerminalTargets(s int) []int {
	if s < 0 || s >= len(a.states) {
		return nil
	}
	targets := make([]int, 0, len(a.states[s].terminals))
	for _, tr := range a.states[s].terminals {
		targets = append(targets, tr.target)
	}
	return targets
}

// addState appends a fresh state to the arena and returns its index.
// States are never removed or renumbered.
func (a *Automaton[T]) addState() int {
	a.states = append(a.states, state[T]{})
	return len(a.states) - 1
}

// addTerminal adds a terminal transition from -> to guarded by m.
func (a *Automaton[T]) addTerminal(from, to int, m Matcher[T]) {
	a.states[from].terminals = append(a.states[from].terminals, transition[T]{target: to, matcher: m})
}

// addEpsilon adds an epsilon transition from -> to. Duplicate epsilon
// edges are collapsed; Repeat over nested expressions can re-add the
// same edge.
func (a *Automaton[T]) addEpsilon(from, to int) {
	if slices.Contains(a.states[from].epsilons, to) {
		return
	}
	a.states[from].epsilons = append(a.states[from].epsilons, to)
}
