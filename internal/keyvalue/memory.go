package keyvalue

import "sync"

// Memory is an in-memory Store.
//
// It backs tests and serves as the fallback when no database is available:
// the application stays usable, state is simply not persisted across runs.
type Memory struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set stores value under key, overwriting any previous value.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.entries[key] = copied
	return nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping() error {
	return nil
}
