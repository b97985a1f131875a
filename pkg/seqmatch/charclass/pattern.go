package charclass

import "github.com/randalmurphal/seqmatch/pkg/seqmatch"

// patternKind identifies the variant of a Pattern node.
type patternKind int

const (
	kindRule patternKind = iota
	kindSeq
	kindAlt
	kindStar
	kindPlus
	kindOpt
	kindEmpty
)

// Pattern is the front-end expression tree over character rules.
// It mirrors the core's variants and adds Plus and Opt sugar; Expr()
// performs the translation into the core's five variants.
//
// Patterns are immutable once built.
type Pattern struct {
	kind     patternKind
	rule     Rule
	children []*Pattern
}

// Char returns a pattern matching exactly the rune c.
func Char(c rune) *Pattern {
	return &Pattern{kind: kindRule, rule: Rule{kind: ruleChar, char: c}}
}

// Alpha returns a pattern matching any alphabetic rune.
func Alpha() *Pattern {
	return &Pattern{kind: kindRule, rule: Rule{kind: ruleAlpha}}
}

// Num returns a pattern matching any numeric rune.
func Num() *Pattern {
	return &Pattern{kind: kindRule, rule: Rule{kind: ruleNum}}
}

// Whitespace returns a pattern matching any whitespace rune.
func Whitespace() *Pattern {
	return &Pattern{kind: kindRule, rule: Rule{kind: ruleWhitespace}}
}

// Seq returns a pattern matching its elements in order.
func Seq(patterns ...*Pattern) *Pattern {
	checkChildren(patterns)
	return &Pattern{kind: kindSeq, children: patterns}
}

// Alt returns a pattern matching any one of its alternatives.
func Alt(patterns ...*Pattern) *Pattern {
	checkChildren(patterns)
	return &Pattern{kind: kindAlt, children: patterns}
}

// Star returns a pattern matching zero or more occurrences of p.
func Star(p *Pattern) *Pattern {
	checkChild(p)
	return &Pattern{kind: kindStar, children: []*Pattern{p}}
}

// Plus returns a pattern matching one or more occurrences of p.
func Plus(p *Pattern) *Pattern {
	checkChild(p)
	return &Pattern{kind: kindPlus, children: []*Pattern{p}}
}

// Opt returns a pattern matching p or nothing.
func Opt(p *Pattern) *Pattern {
	checkChild(p)
	return &Pattern{kind: kindOpt, children: []*Pattern{p}}
}

// Empty returns a pattern matching only the empty string.
func Empty() *Pattern {
	return &Pattern{kind: kindEmpty}
}

// Expr translates the pattern into the core expression tree.
// Plus and Opt desugar into the core's OneOrMore and ZeroOrOne forms.
func (p *Pattern) Expr() *seqmatch.Expr[rune] {
	switch p.kind {
	case kindRule:
		return seqmatch.Terminal[rune](p.rule)
	case kindSeq:
		return seqmatch.Sequence(p.childExprs()...)
	case kindAlt:
		return seqmatch.Choice(p.childExprs()...)
	case kindStar:
		return seqmatch.Repeat(p.children[0].Expr())
	case kindPlus:
		return seqmatch.OneOrMore(p.children[0].Expr())
	case kindOpt:
		return seqmatch.ZeroOrOne(p.children[0].Expr())
	case kindEmpty:
		return seqmatch.Null[rune]()
	}
	panic("charclass: unknown pattern kind")
}

// Compile lowers the pattern into an automaton.
// Shorthand for p.Expr().Compile(opts...).
func (p *Pattern) Compile(opts ...seqmatch.Option) *seqmatch.Automaton[rune] {
	return p.Expr().Compile(opts...)
}

func (p *Pattern) childExprs() []*seqmatch.Expr[rune] {
	exprs := make([]*seqmatch.Expr[rune], len(p.children))
	for i, child := range p.children {
		exprs[i] = child.Expr()
	}
	return exprs
}

func checkChildren(patterns []*Pattern) {
	for _, p := range patterns {
		checkChild(p)
	}
}

func checkChild(p *Pattern) {
	if p == nil {
		panic("charclass: pattern child cannot be nil")
	}
}
