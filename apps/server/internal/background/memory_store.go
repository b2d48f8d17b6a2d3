package background

import (
	"context"
	"sync"

	"github.com/tilsley/gallery/pkg/api"
)

// Compile-time check: *MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the configuration in process memory.
type MemoryStore struct {
	mu  sync.RWMutex
	cfg *api.BackgroundConfig
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the saved configuration.
func (m *MemoryStore) Load(_ context.Context) (*api.BackgroundConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cfg == nil {
		return nil, nil //nolint:nilnil // nothing saved yet
	}
	cp := *m.cfg
	return &cp, nil
}

// Save replaces the configuration.
func (m *MemoryStore) Save(_ context.Context, cfg api.BackgroundConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = &cfg
	return nil
}
