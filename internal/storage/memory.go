package storage

import "sync"

// Memory is a map-backed Adapter for tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte

	// FailWrites makes every Write return ErrStorageUnavailable. Used by
	// tests to exercise degraded-mode behavior in the stores.
	FailWrites bool
}

// NewMemory creates an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Read returns the slot value, or ok=false if the key is absent.
func (m *Memory) Read(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

// Write overwrites the slot unconditionally.
func (m *Memory) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrStorageUnavailable
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.slots[key] = cp
	return nil
}

// Delete removes the slot. No-op if the key is absent.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Close is a no-op for the memory adapter.
func (m *Memory) Close() error { return nil }
