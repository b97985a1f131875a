// Package patternset is a thread-safe collection of named, compiled
// character patterns.
//
// A Set maps names to rune automata. Register an automaton once, then
// match any number of inputs against it by name from any goroutine.
package patternset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/patternfile"
)

// ErrNotFound indicates a name with no registered pattern.
var ErrNotFound = errors.New("pattern not found")

// Set is a thread-safe registry of compiled patterns indexed by name.
// It uses sync.RWMutex for read-heavy workloads; matching takes only
// the read lock.
type Set struct {
	mu      sync.RWMutex
	entries map[string]*seqmatch.Automaton[rune]
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		entries: make(map[string]*seqmatch.Automaton[rune]),
	}
}

// Register adds or replaces a pattern in the set.
func (s *Set) Register(name string, a *seqmatch.Automaton[rune]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = a
}

// Get returns the pattern for a name and whether it exists.
func (s *Set) Get(name string) (*seqmatch.Automaton[rune], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.entries[name]
	return a, ok
}

// MustGet returns the pattern for a name, panicking if not found.
func (s *Set) MustGet(name string) *seqmatch.Automaton[rune] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.entries[name]
	if !ok {
		panic("patternset: pattern not found: " + name)
	}
	return a
}

// Has returns true if a pattern with the name exists.
func (s *Set) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

// Delete removes a pattern from the set.
func (s *Set) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, name)
}

// Names returns the names of all registered patterns.
// The order is not guaranteed.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered patterns.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Range iterates over all patterns. If fn returns false, iteration
// stops.
//
// Range iterates over a snapshot of the set, so it is safe to call
// Register or Delete during iteration without affecting the current
// iteration.
func (s *Set) Range(fn func(name string, a *seqmatch.Automaton[rune]) bool) {
	s.mu.RLock()
	snapshot := make(map[string]*seqmatch.Automaton[rune], len(s.entries))
	for name, a := range s.entries {
		snapshot[name] = a
	}
	s.mu.RUnlock()

	for name, a := range snapshot {
		if !fn(name, a) {
			return
		}
	}
}

// Match runs the named pattern against the input string. It returns
// ErrNotFound if no pattern with the name is registered.
func (s *Set) Match(ctx context.Context, name, input string, opts ...seqmatch.Option) (bool, error) {
	a, ok := s.Get(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return a.Match(ctx, []rune(input), opts...), nil
}

// LoadDocument compiles every definition in the document and registers
// the results. Registration is all-or-nothing: if any pattern fails to
// compile the set is left unchanged.
func (s *Set) LoadDocument(doc patternfile.Document, opts ...seqmatch.Option) error {
	automata, err := doc.Compile(opts...)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, a := range automata {
		s.entries[name] = a
	}
	return nil
}
