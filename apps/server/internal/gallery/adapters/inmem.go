package adapters

import (
	"context"
	"crypto/sha1" //nolint:gosec // matches the git blob id shape, not used for security
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/pkg/api"
)

// Compile-time check: *InMem implements gallery.ContentsFetcher.
var _ gallery.ContentsFetcher = (*InMem)(nil)

// InMem is an in-memory gallery.ContentsFetcher for unit tests. Directory
// listings are derived from the seeded file paths and returned sorted by name,
// the way GitHub orders them.
type InMem struct {
	mu       sync.Mutex
	files    map[string]int64              // path -> size
	listings map[string][]api.ContentEntry // explicit listings, override derived ones
	failures map[string]error              // path -> error returned by FetchContents
	calls    map[string]int
}

// NewInMem creates an empty InMem fetcher.
func NewInMem() *InMem {
	return &InMem{
		files:    make(map[string]int64),
		listings: make(map[string][]api.ContentEntry),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// AddFile seeds a file; parent directories appear implicitly.
func (m *InMem) AddFile(path string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = size
}

// SetListing pins the exact listing returned for path.
func (m *InMem) SetListing(path string, entries []api.ContentEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[path] = entries
}

// Fail makes every FetchContents call for path return err. Pass nil to clear.
func (m *InMem) Fail(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, path)
		return
	}
	m.failures[path] = err
}

// Calls reports how many times path has been fetched.
func (m *InMem) Calls(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[path]
}

// TotalCalls reports the number of fetches across all paths.
func (m *InMem) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// FetchContents returns the immediate children of dirPath. An unknown,
// non-root directory yields a 404 RemoteFetchError.
func (m *InMem) FetchContents(ctx context.Context, dirPath string) ([]api.ContentEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[dirPath]++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.failures[dirPath]; ok {
		return nil, err
	}
	if entries, ok := m.listings[dirPath]; ok {
		out := make([]api.ContentEntry, len(entries))
		copy(out, entries)
		return out, nil
	}

	prefix := dirPath
	if prefix != "" {
		prefix += "/"
	}
	seen := make(map[string]bool)
	var entries []api.ContentEntry
	for filePath, size := range m.files {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		rest := filePath[len(prefix):]
		name, _, isDir := strings.Cut(rest, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		if isDir {
			entries = append(entries, dirEntry(prefix+name))
		} else {
			entries = append(entries, fileEntry(prefix+name, size))
		}
	}

	if len(entries) == 0 && dirPath != "" {
		return nil, gallery.RemoteFetchError{Path: dirPath, StatusCode: http.StatusNotFound}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	if entries == nil {
		entries = []api.ContentEntry{}
	}
	return entries, nil
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

func fakeSHA(p string) string {
	sum := sha1.Sum([]byte(p)) //nolint:gosec // not used for security
	return hex.EncodeToString(sum[:])
}

func dirEntry(p string) api.ContentEntry {
	html := "https://github.com/inmem/gallery/tree/main/" + p
	return api.ContentEntry{
		Name:    baseName(p),
		Path:    p,
		Type:    "dir",
		Sha:     fakeSHA(p),
		HtmlUrl: &html,
	}
}

func fileEntry(p string, size int64) api.ContentEntry {
	html := "https://github.com/inmem/gallery/blob/main/" + p
	download := "https://raw.githubusercontent.com/inmem/gallery/main/" + p
	return api.ContentEntry{
		Name:        baseName(p),
		Path:        p,
		Type:        "file",
		Size:        size,
		Sha:         fakeSHA(p),
		DownloadUrl: &download,
		HtmlUrl:     &html,
	}
}
