package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/pkg/api"
)

// Compile-time check: *HTTPFetcher implements gallery.ContentsFetcher.
var _ gallery.ContentsFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher reads the GitHub (or mock-GitHub) contents API with a plain
// *http.Client. The client is injected so tests and callers control
// transport and timeouts.
type HTTPFetcher struct {
	baseURL    string
	owner      string
	repo       string
	httpClient *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher for owner/repo at baseURL.
// A nil httpClient means http.DefaultClient.
func NewHTTPFetcher(baseURL, owner, repo string, httpClient *http.Client) *HTTPFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPFetcher{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		owner:      owner,
		repo:       repo,
		httpClient: httpClient,
	}
}

// FetchContents returns the listing at dirPath. A path naming a single file
// is returned as a one-entry listing.
func (f *HTTPFetcher) FetchContents(ctx context.Context, dirPath string) ([]api.ContentEntry, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		f.baseURL, url.PathEscape(f.owner), url.PathEscape(f.repo), escapePath(dirPath))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, gallery.RemoteFetchError{Path: dirPath, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, gallery.RemoteFetchError{Path: dirPath, Err: fmt.Errorf("GET %s: %w", u, err)}
	}
	defer func() { //nolint:errcheck // response body close errors are non-actionable after reading
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, gallery.RemoteFetchError{Path: dirPath, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gallery.RemoteFetchError{Path: dirPath, Err: fmt.Errorf("read body: %w", err)}
	}
	entries, err := decodeListing(body)
	if err != nil {
		return nil, gallery.RemoteFetchError{Path: dirPath, Err: err}
	}
	return entries, nil
}

// decodeListing accepts either a directory array or a single file object.
func decodeListing(body []byte) ([]api.ContentEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single api.ContentEntry
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("decode file entry: %w", err)
		}
		return []api.ContentEntry{single}, nil
	}
	var entries []api.ContentEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("decode dir listing: %w", err)
	}
	return entries, nil
}

// escapePath escapes each segment of a slash-separated repository path.
func escapePath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
