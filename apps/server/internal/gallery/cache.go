package gallery

import (
	"context"
	"sync"
)

// Compile-time check: *MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)

// MemoryCache is a process-local Cache. Concurrent writers for the same key
// race freely; the last Set wins.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]CacheEntry
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]CacheEntry)}
}

// Get returns the entry stored under key, or nil if there is none.
func (m *MemoryCache) Get(_ context.Context, key string) (*CacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, nil //nolint:nilnil // absent key is not an error
	}
	return &e, nil
}

// Set stores entry, replacing any previous entry for the same key.
func (m *MemoryCache) Set(_ context.Context, entry CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.Key] = entry
	return nil
}

// Clear drops every entry.
func (m *MemoryCache) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	return nil
}

// Len reports the number of stored entries, stale or not.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
