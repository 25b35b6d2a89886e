package store

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStorage is the fallback [Storage] used when the SQLite backend is
// unavailable. It is scoped to the running process: data lives only as long
// as the dashboard does, which mirrors a page-local store in contexts
// without privileged storage.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemoryStorage constructs an empty in-memory [Storage].
func NewMemoryStorage() Storage {
	return &memoryStorage{
		values: make(map[string]json.RawMessage),
	}
}

func (m *memoryStorage) Load(_ context.Context, keys ...string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if value, ok := m.values[key]; ok {
			values[key] = append(json.RawMessage(nil), value...)
		}
	}

	return values, nil
}

func (m *memoryStorage) Save(_ context.Context, entries map[string]json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range entries {
		m.values[key] = append(json.RawMessage(nil), value...)
	}

	return nil
}
