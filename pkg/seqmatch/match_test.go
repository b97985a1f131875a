package seqmatch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// matchString compiles e and matches it against the runes of s.
func matchString(t *testing.T, e *Expr[rune], s string) bool {
	t.Helper()
	return e.Compile().Match(context.Background(), []rune(s))
}

// TestMatch_Terminal verifies single-terminal acceptance.
func TestMatch_Terminal(t *testing.T) {
	e := Terminal[rune](charMatcher('a'))

	assert.True(t, matchString(t, e, "a"))
	assert.False(t, matchString(t, e, ""))
	assert.False(t, matchString(t, e, "b"))
	assert.False(t, matchString(t, e, "aa"))
}

// TestMatch_Sequence verifies in-order concatenation.
func TestMatch_Sequence(t *testing.T) {
	e := Sequence(
		Terminal[rune](charMatcher('a')),
		Terminal[rune](charMatcher('b')),
	)

	assert.True(t, matchString(t, e, "ab"))
	assert.False(t, matchString(t, e, "ba"))
	assert.False(t, matchString(t, e, "a"))
	assert.False(t, matchString(t, e, "abc"))
	assert.False(t, matchString(t, e, ""))
}

// TestMatch_EmptySequence verifies that Sequence() accepts exactly the
// empty input, like Null.
func TestMatch_EmptySequence(t *testing.T) {
	e := Sequence[rune]()

	assert.True(t, matchString(t, e, ""))
	assert.False(t, matchString(t, e, "a"))
}

// TestMatch_Choice verifies alternation, including parallel branches
// that expand between the same state pair.
func TestMatch_Choice(t *testing.T) {
	e := Choice(
		Terminal[rune](charMatcher('a')),
		Terminal[rune](charMatcher('b')),
	)

	assert.True(t, matchString(t, e, "a"))
	assert.True(t, matchString(t, e, "b"))
	assert.False(t, matchString(t, e, "c"))
	assert.False(t, matchString(t, e, "ab"))
	assert.False(t, matchString(t, e, ""))
}

// TestMatch_EmptyChoice verifies that Choice() accepts nothing, not even
// the empty input.
func TestMatch_EmptyChoice(t *testing.T) {
	e := Choice[rune]()

	assert.False(t, matchString(t, e, ""))
	assert.False(t, matchString(t, e, "a"))
}

// TestMatch_Repeat verifies the Kleene closure, including the empty
// input accepted through the initial epsilon-closure.
func TestMatch_Repeat(t *testing.T) {
	e := Repeat(Terminal[rune](charMatcher('a')))

	assert.True(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "a"))
	assert.True(t, matchString(t, e, "aaaa"))
	assert.False(t, matchString(t, e, "ab"))
	assert.False(t, matchString(t, e, "b"))
}

// TestMatch_Null verifies that Null accepts exactly the empty input.
func TestMatch_Null(t *testing.T) {
	e := Null[rune]()

	assert.True(t, matchString(t, e, ""))
	assert.False(t, matchString(t, e, "a"))
}

// TestMatch_OneOrMore verifies the one-or-more sugar.
func TestMatch_OneOrMore(t *testing.T) {
	e := OneOrMore(Terminal[rune](charMatcher('a')))

	assert.False(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "a"))
	assert.True(t, matchString(t, e, "aaa"))
	assert.False(t, matchString(t, e, "ab"))
}

// TestMatch_ZeroOrOne verifies the optional sugar.
func TestMatch_ZeroOrOne(t *testing.T) {
	e := ZeroOrOne(Terminal[rune](charMatcher('a')))

	assert.True(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "a"))
	assert.False(t, matchString(t, e, "aa"))
}

// TestMatch_RepeatOfSequence verifies whole-group repetition: partial
// iterations are rejected.
func TestMatch_RepeatOfSequence(t *testing.T) {
	e := Repeat(Sequence(
		Terminal[rune](charMatcher('a')),
		Terminal[rune](charMatcher('b')),
	))

	assert.True(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "ab"))
	assert.True(t, matchString(t, e, "abab"))
	assert.False(t, matchString(t, e, "aba"))
	assert.False(t, matchString(t, e, "b"))
}

// TestMatch_RepeatOfChoice verifies (a|b)* accepts arbitrary
// interleavings.
func TestMatch_RepeatOfChoice(t *testing.T) {
	e := Repeat(Choice(
		Terminal[rune](charMatcher('a')),
		Terminal[rune](charMatcher('b')),
	))

	assert.True(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "abba"))
	assert.True(t, matchString(t, e, "bbbb"))
	assert.False(t, matchString(t, e, "abc"))
}

// TestMatch_ChoiceOfRepeats documents the loop-sharing behavior: both
// repeat branches reuse the shared entry/exit pair as their loop states,
// so Choice(Repeat(a), Repeat(b)) behaves as (a|b)* and accepts
// interleavings of the two branches.
func TestMatch_ChoiceOfRepeats(t *testing.T) {
	e := Choice(
		Repeat(Terminal[rune](charMatcher('a'))),
		Repeat(Terminal[rune](charMatcher('b'))),
	)

	assert.True(t, matchString(t, e, ""))
	assert.True(t, matchString(t, e, "aaa"))
	assert.True(t, matchString(t, e, "bb"))
	// Accepted because the loops share their join states.
	assert.True(t, matchString(t, e, "ab"))
	assert.True(t, matchString(t, e, "bbba"))
}

// TestMatch_DeadSetShortCircuits verifies that input after the active
// set empties cannot revive the automaton.
func TestMatch_DeadSetShortCircuits(t *testing.T) {
	e := Terminal[rune](charMatcher('a'))

	assert.False(t, matchString(t, e, "ba"))
	assert.False(t, matchString(t, e, "xaaaa"))
}

// TestMatch_Identifier exercises a composite pattern: an alphabetic rune
// followed by any run of alphanumerics.
func TestMatch_Identifier(t *testing.T) {
	alpha := Terminal[rune](MatcherFunc[rune](func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}))
	alnum := Terminal[rune](MatcherFunc[rune](func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}))
	e := Sequence(alpha, Repeat(alnum))

	assert.True(t, matchString(t, e, "x"))
	assert.True(t, matchString(t, e, "counter2"))
	assert.True(t, matchString(t, e, "TotalSum"))
	assert.False(t, matchString(t, e, "2fast"))
	assert.False(t, matchString(t, e, ""))
	assert.False(t, matchString(t, e, "has space"))
}

// TestMatch_NonRuneTerminals verifies the engine is generic over the
// terminal type.
func TestMatch_NonRuneTerminals(t *testing.T) {
	small := Terminal[int](MatcherFunc[int](func(n int) bool { return n < 10 }))
	big := Terminal[int](MatcherFunc[int](func(n int) bool { return n >= 10 }))
	e := Sequence(Repeat(small), big)
	a := e.Compile()

	assert.True(t, a.Match(context.Background(), []int{1, 2, 3, 99}))
	assert.True(t, a.Match(context.Background(), []int{42}))
	assert.False(t, a.Match(context.Background(), []int{1, 2, 3}))
	assert.False(t, a.Match(context.Background(), []int{99, 1}))
}

// TestMatch_NilContext verifies that a nil context is tolerated.
func TestMatch_NilContext(t *testing.T) {
	a := Terminal[rune](charMatcher('a')).Compile()

	//nolint:staticcheck // nil context is part of the contract
	assert.True(t, a.Match(nil, []rune("a")))
}

// TestMatch_Concurrent verifies that one automaton serves concurrent
// Match calls without synchronization.
func TestMatch_Concurrent(t *testing.T) {
	a := Repeat(Sequence(
		Terminal[rune](charMatcher('a')),
		Terminal[rune](charMatcher('b')),
	)).Compile()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.True(t, a.Match(context.Background(), []rune("abab")))
			} else {
				assert.False(t, a.Match(context.Background(), []rune("aba")))
			}
		}(i)
	}
	wg.Wait()
}
