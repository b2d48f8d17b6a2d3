package gallery

import (
	"context"

	"github.com/tilsley/gallery/pkg/api"
)

// ContentsFetcher reads one directory listing from the remote repository.
// Implementations live in the adapters package (go-github, raw HTTP, in-memory).
type ContentsFetcher interface {
	FetchContents(ctx context.Context, path string) ([]api.ContentEntry, error)
}

// FetcherFunc adapts a plain function to ContentsFetcher.
type FetcherFunc func(ctx context.Context, path string) ([]api.ContentEntry, error)

// FetchContents calls f.
func (f FetcherFunc) FetchContents(ctx context.Context, path string) ([]api.ContentEntry, error) {
	return f(ctx, path)
}

// Cache stores contents listings keyed by path. Staleness is decided by the
// Client, not the cache.
type Cache interface {
	// Get returns nil, nil when no entry exists for key.
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, entry CacheEntry) error
	Clear(ctx context.Context) error
}
