package store

import (
	"context"
	"sync"
)

// Memory is a map-backed KV for tests and persistence-disabled sessions.
//
// The error fields inject medium failures for failure-path tests: when
// set, the corresponding operation returns that error without touching
// the map. Thread-safe via internal mutex.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// GetErr, SetErr, RemoveErr force the matching operation to fail.
	GetErr    error
	SetErr    error
	RemoveErr error
}

// Memory implements KV.
var _ KV = (*Memory)(nil)

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements KV.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Remove implements KV.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys. Used by tests.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
