package blobstore

import (
	"context"
	"sync"
)

// Memory is a volatile in-process backend.  It backs tests and the
// STORE_BACKEND=memory mode where persistence across restarts is not
// wanted.
type Memory struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Load returns the stored blob or ErrNotFound when nothing has been
// saved yet.
func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(m.data))
	copy(cp, m.data)
	return cp, nil
}

// Save replaces the stored blob.
func (m *Memory) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}
