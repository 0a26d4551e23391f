package storage

import "sync"

// KV is a durable string key-value store scoped to one client.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store is the durable KV.
var _ KV = (*Store)(nil)

// MemoryKV is a process-local KV, used when the database is unavailable and
// in tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
