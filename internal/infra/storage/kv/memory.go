package kv

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryBackend хранилище в памяти процесса
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryBackend создает пустое хранилище в памяти
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(v), true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = cloneBytes(value)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryBackend) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryBackend) Update(_ context.Context, key string, fn func(current []byte, exists bool) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.data[key]
	next, err := fn(cloneBytes(current), exists)
	if err != nil {
		return err
	}
	m.data[key] = cloneBytes(next)
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
