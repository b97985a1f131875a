package patternstore

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory pattern store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]storedPattern
	closed bool
}

type storedPattern struct {
	pattern   string
	updatedAt time.Time
}

// NewMemoryStore creates a new in-memory pattern store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]storedPattern),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.data[name] = storedPattern{
		pattern:   pattern,
		updatedAt: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}

	p, ok := m.data[name]
	if !ok {
		return "", ErrNotFound
	}
	return p.pattern, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for name, p := range m.data {
		infos = append(infos, Info{
			Name:      name,
			Pattern:   p.pattern,
			UpdatedAt: p.updatedAt,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the number of stored patterns. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
