package storage

import (
	"strconv"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Memory is an in-process key/value store. It backs the game when no
// database is configured and in tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

var _ core.MaxStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set writes value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// SetIfGreater writes value under key unless a larger or equal count is
// already stored. The comparison and the write happen under one lock.
func (m *Memory) SetIfGreater(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.values[key]; ok {
		if n, err := strconv.Atoi(prev); err == nil && n >= 0 && n >= value {
			return false, nil
		}
	}
	m.values[key] = strconv.Itoa(value)
	return true, nil
}
