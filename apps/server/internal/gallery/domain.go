package gallery

import (
	"time"

	"github.com/tilsley/gallery/pkg/api"
)

// Entry types reported by the GitHub contents API.
const (
	entryTypeDir  = "dir"
	entryTypeFile = "file"
)

// CacheEntry is a cached contents listing for a single repository path.
type CacheEntry struct {
	Key      string             `json:"key"`
	Payload  []api.ContentEntry `json:"payload"`
	StoredAt time.Time          `json:"storedAt"`
}

// Outcome is the result of a best-effort aggregation call. When Diagnostic is
// set, Value holds the neutral empty result and the error explains why.
type Outcome[T any] struct {
	Value      T
	Diagnostic error
}

// Degraded reports whether the value is a fallback produced after a failure.
func (o Outcome[T]) Degraded() bool {
	return o.Diagnostic != nil
}

func succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func degraded[T any](empty T, err error) Outcome[T] {
	return Outcome[T]{Value: empty, Diagnostic: err}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
