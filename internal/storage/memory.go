package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an ephemeral Store. State containers use it in tests; nothing
// survives process exit.
type Memory struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{snaps: make(map[string]Snapshot)}
}

func (m *Memory) Load(_ context.Context, key string) (Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snaps[key]
	return snap, ok, nil
}

func (m *Memory) Save(_ context.Context, key string, version int, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[key] = Snapshot{
		Version:   version,
		Payload:   append([]byte(nil), payload...),
		UpdatedAt: time.Now(),
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.snaps))
	for k := range m.snaps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) Close() error { return nil }
