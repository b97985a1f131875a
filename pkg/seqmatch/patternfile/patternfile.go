// Package patternfile loads named character patterns from YAML or JSON
// documents.
//
// A document is a list of named pattern-text definitions:
//
//	patterns:
//	  - name: identifier
//	    pattern: \a(\a|\d)*
//	  - name: integer
//	    pattern: \d+
//
// Definitions use the charclass pattern-text syntax and compile into
// rune automata.
package patternfile

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/charclass"
)

// Validation errors.
var (
	// ErrNoPatterns indicates a document with no definitions.
	ErrNoPatterns = errors.New("document contains no patterns")

	// ErrEmptyName indicates a definition with an empty name.
	ErrEmptyName = errors.New("pattern name cannot be empty")

	// ErrDuplicateName indicates two definitions sharing a name.
	ErrDuplicateName = errors.New("duplicate pattern name")
)

// Definition is one named pattern in a document.
type Definition struct {
	Name    string `yaml:"name" json:"name"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

// Document is a collection of named pattern definitions.
type Document struct {
	Patterns []Definition `yaml:"patterns" json:"patterns"`
}

// Validate checks structural rules: at least one definition, no empty
// names, no duplicate names. It does not parse the pattern text; Compile
// does.
func (d Document) Validate() error {
	if len(d.Patterns) == 0 {
		return ErrNoPatterns
	}
	seen := make(map[string]struct{}, len(d.Patterns))
	for i, def := range d.Patterns {
		if def.Name == "" {
			return fmt.Errorf("%w: definition %d", ErrEmptyName, i)
		}
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}

// Compile parses and compiles every definition, returning automata keyed
// by pattern name. The document is validated first.
func (d Document) Compile(opts ...seqmatch.Option) (map[string]*seqmatch.Automaton[rune], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	automata := make(map[string]*seqmatch.Automaton[rune], len(d.Patterns))
	for _, def := range d.Patterns {
		p, err := charclass.Parse(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", def.Name, err)
		}
		automata[def.Name] = p.Compile(opts...)
	}
	return automata, nil
}
