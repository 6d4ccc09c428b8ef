package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps snapshots in process memory, guarded by an RWMutex.
// Services tests run against it.
type MemoryBackend struct {
	mu        sync.RWMutex
	snapshots map[Collection]Snapshot
}

// NewMemoryBackend constructs an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		snapshots: make(map[Collection]Snapshot),
	}
}

func (m *MemoryBackend) Load(_ context.Context, c Collection) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.snapshots[c]
	snap.Payload = append([]byte(nil), snap.Payload...)
	return snap, nil
}

func (m *MemoryBackend) Save(_ context.Context, c Collection, payload []byte, count int, expectedVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snapshots[c].Version != expectedVersion {
		return 0, ErrVersionConflict
	}
	newVersion := expectedVersion + 1
	m.snapshots[c] = Snapshot{
		Payload: append([]byte(nil), payload...),
		Count:   count,
		Version: newVersion,
	}
	return newVersion, nil
}

func (m *MemoryBackend) Reset(_ context.Context, c Collection) error {
	m.mu.Lock()
	delete(m.snapshots, c)
	m.mu.Unlock()
	return nil
}
