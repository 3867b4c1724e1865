package store

import (
	"context"
	"sync"
)

// KV is the persistent key-value capability the report store runs on.
// Values are opaque string blobs (JSON-encoded maps and lists).
//
// Design decision: We inject a narrow get/set interface rather than using
// the database directly because:
//  1. Classifier tests can run against an in-memory fake
//  2. The migration logic is independent of the storage engine
//  3. The UI shell can substitute platform storage without touching the engine
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is an in-memory KV used in tests and dry runs. Safe for
// concurrent use.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
