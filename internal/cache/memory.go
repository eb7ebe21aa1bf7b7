package cache

import (
	"context"
	"sync"
)

// Memory is an in-process Cache, used where no valkey server is available
type Memory struct {
	mu      sync.Mutex
	entries map[string]map[string][]byte
}

// NewMemory creates an empty in-process cache
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, collection, field string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[collection][field]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, collection, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[collection] == nil {
		m.entries[collection] = make(map[string][]byte)
	}
	m.entries[collection][field] = value
	return nil
}

func (m *Memory) Invalidate(_ context.Context, collections ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range collections {
		delete(m.entries, c)
	}
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() {}
