package benchmarks

import (
	"github.com/randalmurphal/seqmatch/pkg/seqmatch"
)

// charMatcher returns a matcher accepting exactly the rune c.
func charMatcher(c rune) seqmatch.Matcher[rune] {
	return seqmatch.MatcherFunc[rune](func(r rune) bool { return r == c })
}

// buildLinearExpr returns a sequence of n identical terminals.
func buildLinearExpr(n int) *seqmatch.Expr[rune] {
	elems := make([]*seqmatch.Expr[rune], n)
	for i := range elems {
		elems[i] = seqmatch.Terminal[rune](charMatcher('a'))
	}
	return seqmatch.Sequence(elems...)
}

// buildChoiceExpr returns an n-way alternation over distinct runes.
func buildChoiceExpr(n int) *seqmatch.Expr[rune] {
	alts := make([]*seqmatch.Expr[rune], n)
	for i := range alts {
		alts[i] = seqmatch.Terminal[rune](charMatcher(rune('a' + i%26)))
	}
	return seqmatch.Choice(alts...)
}

// repeatedInput returns n copies of the rune c.
func repeatedInput(c rune, n int) []rune {
	input := make([]rune, n)
	for i := range input {
		input[i] = c
	}
	return input
}
