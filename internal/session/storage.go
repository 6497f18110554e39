package session

import (
	"encoding/json"
	"sync"
)

// Memory is an in-memory Storage used by tests and server-side prerendering,
// mirroring the JSON round-trip browser local storage performs.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: map[string][]byte{}}
}

func (m *Memory) Set(k string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[k] = encoded
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(k string, v any) error {
	m.mu.Lock()
	raw, ok := m.items[k]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func (m *Memory) Del(k string) {
	m.mu.Lock()
	delete(m.items, k)
	m.mu.Unlock()
}

// SetRaw stores a pre-encoded value verbatim, letting tests plant corrupt
// records.
func (m *Memory) SetRaw(k string, raw []byte) {
	m.mu.Lock()
	m.items[k] = raw
	m.mu.Unlock()
}

// Contains reports whether a key holds a value.
func (m *Memory) Contains(k string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[k]
	return ok
}
