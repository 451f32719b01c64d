package storage

import (
	"context"
	"sync"
)

// Memory is a map-backed KV used in tests and for ephemeral dev runs.
// FailWrites lets tests simulate a storage outage for write paths.
type Memory struct {
	mu         sync.RWMutex
	data       map[string][]byte
	FailWrites error // when non-nil, Set and Delete return this error
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the value for key, or ErrKeyNotFound
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	// Copy so callers can't mutate the stored slice
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete removes key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}

	delete(m.data, key)
	return nil
}

// Ping always succeeds for the in-memory store
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// Close discards the stored data
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string][]byte)
	return nil
}

// Len reports the number of stored keys
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
