package melody

import "github.com/randalmurphal/seqmatch/pkg/seqmatch"

// patternKind identifies the variant of a Pattern node.
type patternKind int

const (
	kindNote patternKind = iota
	kindSeq
	kindAlt
	kindStar
	kindOneOrMore
	kindZeroOrOne
	kindEmpty
)

// Pattern is the front-end expression tree over note rules.
// Expr() translates it into the core's five-variant tree; OneOrMore and
// ZeroOrOne desugar there.
type Pattern struct {
	kind     patternKind
	rule     Rule
	children []*Pattern
}

// Single returns a pattern matching one note accepted by the rule.
func Single(rule Rule) *Pattern {
	return &Pattern{kind: kindNote, rule: rule}
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

// OneOrMore returns a pattern matching one or more occurrences of p.
func OneOrMore(p *Pattern) *Pattern {
	checkChild(p)
	return &Pattern{kind: kindOneOrMore, children: []*Pattern{p}}
}

// ZeroOrOne returns a pattern matching p or nothing.
func ZeroOrOne(p *Pattern) *Pattern {
	checkChild(p)
	return &Pattern{kind: kindZeroOrOne, children: []*Pattern{p}}
}

// Empty returns a pattern matching only the empty melody.
func Empty() *Pattern {
	return &Pattern{kind: kindEmpty}
}

// Expr translates the pattern into the core expression tree.
func (p *Pattern) Expr() *seqmatch.Expr[Note] {
	switch p.kind {
	case kindNote:
		return seqmatch.Terminal[Note](p.rule)
	case kindSeq:
		return seqmatch.Sequence(p.childExprs()...)
	case kindAlt:
		return seqmatch.Choice(p.childExprs()...)
	case kindStar:
		return seqmatch.Repeat(p.children[0].Expr())
	case kindOneOrMore:
		return seqmatch.OneOrMore(p.children[0].Expr())
	case kindZeroOrOne:
		return seqmatch.ZeroOrOne(p.children[0].Expr())
	case kindEmpty:
		return seqmatch.Null[Note]()
	}
	panic("melody: unknown pattern kind")
}

// Compile lowers the pattern into an automaton.
func (p *Pattern) Compile(opts ...seqmatch.Option) *seqmatch.Automaton[Note] {
	return p.Expr().Compile(opts...)
}

func (p *Pattern) childExprs() []*seqmatch.Expr[Note] {
	exprs := make([]*seqmatch.Expr[Note], len(p.children))
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
		panic("melody: pattern child cannot be nil")
	}
}
