// Package charclass is a character-alphabet front-end for seqmatch.
//
// Terminals are runes. Rules match a single rune by literal value or by
// class (alphabetic, numeric, whitespace). Patterns combine rules with
// sequencing, alternation, and repetition, and lower into the core's
// expression tree via Pattern.Expr().
//
// Patterns can be built programmatically:
//
//	p := charclass.Seq(charclass.Alpha(), charclass.Star(charclass.Alt(charclass.Alpha(), charclass.Num())))
//
// or parsed from the pattern-text syntax:
//
//	p, err := charclass.Parse(`\a(\a|\d)*`)
//
// Both forms compile to the same automata.
package charclass

import (
	"context"
	"unicode"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch"
)

// ruleKind identifies how a Rule matches a rune.
type ruleKind int

const (
	ruleChar ruleKind = iota
	ruleAlpha
	ruleNum
	ruleWhitespace
)

// Rule matches a single rune. It implements seqmatch.Matcher[rune].
// The zero value is not useful; construct rules through the pattern
// constructors (Char, Alpha, Num, Whitespace).
type Rule struct {
	kind ruleKind
	char rune
}

// Compile-time interface check.
var _ seqmatch.Matcher[rune] = Rule{}

// Matches reports whether the rune satisfies the rule.
func (r Rule) Matches(terminal rune) bool {
	switch r.kind {
	case ruleChar:
		return terminal == r.char
	case ruleAlpha:
		return unicode.IsLetter(terminal)
	case ruleNum:
		return unicode.IsDigit(terminal)
	case ruleWhitespace:
		return unicode.IsSpace(terminal)
	}
	return false
}

// MatchString matches a string against a compiled character automaton.
// The string is decoded into runes first, so multi-byte characters count
// as single terminals.
func MatchString(a *seqmatch.Automaton[rune], s string, opts ...seqmatch.Option) bool {
	return a.Match(context.Background(), []rune(s), opts...)
}
