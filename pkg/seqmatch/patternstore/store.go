// Package patternstore provides persistent storage for named pattern text.
//
// Stores hold pattern definitions as text, not compiled automata; parse
// and compile on load with charclass.Parse.
package patternstore

import (
	"errors"
	"time"
)

// Store persists named pattern definitions.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a pattern definition under a name.
	// Overwrites if a pattern with the name already exists.
	Save(name, pattern string) error

	// Load retrieves a pattern definition.
	// Returns ErrNotFound if no pattern with the name exists.
	Load(name string) (string, error)

	// List returns metadata for all stored patterns, ordered by name.
	// Returns an empty slice (not an error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a pattern.
	// Returns nil if no pattern with the name exists.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides pattern metadata without loading the definition.
type Info struct {
	Name      string
	Pattern   string
	UpdatedAt time.Time
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no pattern with the given name exists.
	ErrNotFound = errors.New("pattern not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("pattern store closed")
)
