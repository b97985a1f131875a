package seqmatch

// Matcher is the terminal-matching capability supplied by a front-end.
// The engine never inspects a terminal's structure; it only asks matchers
// whether a terminal satisfies their rule.
//
// Matchers must be pure from the automaton's perspective: Matches is called
// an unspecified number of times, in an unspecified order, possibly for the
// same terminal more than once.
type Matcher[T any] interface {
	// Matches reports whether the terminal satisfies this matcher's rule.
	Matches(terminal T) bool
}

// MatcherFunc adapts a plain predicate to the Matcher interface.
//
// Example:
//
//	even := seqmatch.MatcherFunc[int](func(n int) bool { return n%2 == 0 })
//	expr := seqmatch.Terminal[int](even)
type MatcherFunc[T any] func(T) bool

// Matches calls f(terminal).
func (f MatcherFunc[T]) Matches(terminal T) bool {
	return f(terminal)
}

// exprOp identifies the variant of an expression node.
type exprOp int

const (
	opTerminal exprOp = iota
	opSequence
	opChoice
	opRepeat
	opNull
)

// Expr is a declarative pattern over terminals of type T.
// Trees are built once with the constructor functions (Terminal, Sequence,
// Choice, Repeat, Null) and are immutable afterwards.
//
// An Expr is NOT matched directly; call Compile() to lower it into an
// Automaton, then Match the automaton against input sequences. A single
// Expr may be compiled any number of times with identical results.
type Expr[T any] struct {
	op       exprOp
	matcher  Matcher[T]
	children []*Expr[T]
}

// Terminal returns an expression matching exactly one terminal accepted by m.
//
// Panics if m is nil.
func Terminal[T any](m Matcher[T]) *Expr[T] {
	if m == nil {
		panic("seqmatch: terminal matcher cannot be nil")
	}
	return &Expr[T]{op: opTerminal, matcher: m}
}

// Sequence returns an expression matching the concatenation of its elements,
// in order. Sequence() with no elements matches only the empty sequence,
// like Null.
//
// Panics if any element is nil.
func Sequence[T any](exprs ...*Expr[T]) *Expr[T] {
	checkChildren(exprs)
	return &Expr[T]{op: opSequence, children: exprs}
}

// Choice returns an expression matching any one of its alternatives.
// Choice() with no alternatives matches nothing at all, not even the
// empty sequence.
//
// Panics if any alternative is nil.
func Choice[T any](exprs ...*Expr[T]) *Expr[T] {
	checkChildren(exprs)
	return &Expr[T]{op: opChoice, children: exprs}
}

// Repeat returns an expression matching zero or more occurrences of e.
//
// Panics if e is nil.
func Repeat[T any](e *Expr[T]) *Expr[T] {
	if e == nil {
		panic("seqmatch: repeat body cannot be nil")
	}
	return &Expr[T]{op: opRepeat, children: []*Expr[T]{e}}
}

// Null returns an expression matching only the empty sequence.
func Null[T any]() *Expr[T] {
	return &Expr[T]{op: opNull}
}

// OneOrMore returns an expression matching one or more occurrences of e.
// It is sugar for Sequence(e, Repeat(e)); there is no dedicated automaton
// construction for it.
//
// Panics if e is nil.
func OneOrMore[T any](e *Expr[T]) *Expr[T] {
	if e == nil {
		panic("seqmatch: repeat body cannot be nil")
	}
	return Sequence(e, Repeat(e))
}

// ZeroOrOne returns an expression matching e or the empty sequence.
// It is sugar for Choice(e, Null).
//
// Panics if e is nil.
func ZeroOrOne[T any](e *Expr[T]) *Expr[T] {
	if e == nil {
		panic("seqmatch: optional body cannot be nil")
	}
	return Choice(e, Null[T]())
}

func checkChildren[T any](exprs []*Expr[T]) {
	for _, e := range exprs {
		if e == nil {
			panic("seqmatch: expression child cannot be nil")
		}
	}
}
