package charclass

import (
	"errors"
	"fmt"
)

// Sentinel errors for pattern-text parsing.
var (
	// ErrUnbalancedParen indicates a '(' without ')' or a stray ')'.
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")

	// ErrDanglingOperator indicates '*', '+', or '?' with nothing to repeat.
	ErrDanglingOperator = errors.New("repetition operator with no operand")

	// ErrTrailingEscape indicates a '\' at the end of the pattern.
	ErrTrailingEscape = errors.New("trailing escape")
)

// Parse builds a Pattern from the pattern-text syntax:
//
//	ab      a then b (concatenation)
//	a|b     a or b
//	a*      zero or more a
//	a+      one or more a
//	a?      optional a
//	(ab)*   grouping
//	\a      any alphabetic rune
//	\d      any numeric rune
//	\s      any whitespace rune
//	\*      literal '*' (any other escaped rune is a literal)
//
// Every other rune is a literal. The empty pattern matches only the
// empty string.
//
// Parse is the only fallible surface of this front-end; the core's
// compilation and matching of the resulting pattern cannot fail.
func Parse(pattern string) (*Pattern, error) {
	p := &parser{input: []rune(pattern)}
	result, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		// alternation only stops early on ')'
		return nil, fmt.Errorf("%w: unexpected ')' at position %d", ErrUnbalancedParen, p.pos)
	}
	return result, nil
}

// parser is a recursive-descent parser over the pattern runes.
// Grammar, lowest precedence first:
//
//	alternation   := sequence ('|' sequence)*
//	sequence      := repetition*
//	repetition    := atom ('*' | '+' | '?')*
//	atom          := '(' alternation ')' | escape | literal
type parser struct {
	input []rune
	pos   int
}

func (p *parser) alternation() (*Pattern, error) {
	first, err := p.sequence()
	if err != nil {
		return nil, err
	}
	alternatives := []*Pattern{first}
	for p.pos < len(p.input) && p.input[p.pos] == '|' {
		p.pos++
		next, err := p.sequence()
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, next)
	}
	if len(alternatives) == 1 {
		return first, nil
	}
	return Alt(alternatives...), nil
}

func (p *parser) sequence() (*Pattern, error) {
	var parts []*Pattern
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '|' || c == ')' {
			break
		}
		part, err := p.repetition()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return Empty(), nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return Seq(parts...), nil
}

func (p *parser) repetition() (*Pattern, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '*':
			p.pos++
			atom = Star(atom)
		case '+':
			p.pos++
			atom = Plus(atom)
		case '?':
			p.pos++
			atom = Opt(atom)
		default:
			return atom, nil
		}
	}
	return atom, nil
}

func (p *parser) atom() (*Pattern, error) {
	c := p.input[p.pos]
	switch c {
	case '(':
		open := p.pos
		p.pos++
		sub, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("%w: '(' at position %d is never closed", ErrUnbalancedParen, open)
		}
		p.pos++
		return sub, nil

	case '*', '+', '?':
		return nil, fmt.Errorf("%w: %q at position %d", ErrDanglingOperator, c, p.pos)

	case '\\':
		p.pos++
		if p.pos >= len(p.input) {
			return nil, ErrTrailingEscape
		}
		esc := p.input[p.pos]
		p.pos++
		switch esc {
		case 'a':
			return Alpha(), nil
		case 'd':
			return Num(), nil
		case 's':
			return Whitespace(), nil
		default:
			return Char(esc), nil
		}

	default:
		p.pos++
		return Char(c), nil
	}
}
