package adapters_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/apps/server/internal/gallery/adapters"
	"github.com/tilsley/gallery/pkg/api"
)

func ptr[T any](v T) *T { return &v }

var sampleListing = []api.ContentEntry{
	{Name: "travel", Path: "travel", Type: "dir", Sha: "d1", HtmlUrl: ptr("https://github.com/o/r/tree/main/travel")},
	{Name: "a.png", Path: "a.png", Type: "file", Size: 42, Sha: "f1", DownloadUrl: ptr("https://raw/a.png")},
}

// ─── HTTPFetcher ──────────────────────────────────────────────────────────────

func TestHTTPFetcher_RequestsContentsPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(sampleListing)
	}))
	defer srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL+"/", "charrrrls", "mypic", srv.Client())
	_, err := f.FetchContents(context.Background(), "my trip/day 1")

	require.NoError(t, err)
	assert.Equal(t, "/repos/charrrrls/mypic/contents/my%20trip/day%201", gotPath)
}

func TestHTTPFetcher_RootPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(sampleListing)
	}))
	defer srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL, "o", "r", nil)
	entries, err := f.FetchContents(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "/repos/o/r/contents/", gotPath)
	assert.Equal(t, sampleListing, entries)
}

func TestHTTPFetcher_Non2xx_ReturnsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL, "o", "r", srv.Client())
	_, err := f.FetchContents(context.Background(), "x")

	var rfe gallery.RemoteFetchError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, http.StatusForbidden, rfe.StatusCode)
	assert.Equal(t, "x", rfe.Path)
}

func TestHTTPFetcher_SingleFileObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(sampleListing[1])
	}))
	defer srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL, "o", "r", srv.Client())
	entries, err := f.FetchContents(context.Background(), "a.png")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.png", entries[0].Name)
}

func TestHTTPFetcher_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL, "o", "r", srv.Client())
	_, err := f.FetchContents(context.Background(), "")

	var rfe gallery.RemoteFetchError
	require.ErrorAs(t, err, &rfe)
	assert.Zero(t, rfe.StatusCode)
}

func TestHTTPFetcher_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	f := adapters.NewHTTPFetcher(srv.URL, "o", "r", nil)
	_, err := f.FetchContents(context.Background(), "")

	var rfe gallery.RemoteFetchError
	require.ErrorAs(t, err, &rfe)
	assert.Zero(t, rfe.StatusCode)
	assert.Error(t, rfe.Err)
}

// ─── InMem ────────────────────────────────────────────────────────────────────

func TestInMem_DerivesSortedListing(t *testing.T) {
	m := adapters.NewInMem()
	m.AddFile("zoo/lion.png", 10)
	m.AddFile("alps/a.jpg", 20)
	m.AddFile("alps/deep/b.jpg", 30)
	m.AddFile("README.md", 5)

	root, err := m.FetchContents(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, root, 3)
	assert.Equal(t, []string{"README.md", "alps", "zoo"}, []string{root[0].Name, root[1].Name, root[2].Name})
	assert.Equal(t, "file", root[0].Type)
	assert.Equal(t, "dir", root[1].Type)

	alps, err := m.FetchContents(context.Background(), "alps")
	require.NoError(t, err)
	require.Len(t, alps, 2)
	assert.Equal(t, "alps/a.jpg", alps[0].Path)
	assert.Equal(t, int64(20), alps[0].Size)
	assert.NotNil(t, alps[0].DownloadUrl)
	assert.Equal(t, "dir", alps[1].Type)
}

func TestInMem_UnknownDirectory_Returns404(t *testing.T) {
	m := adapters.NewInMem()

	_, err := m.FetchContents(context.Background(), "nope")

	var rfe gallery.RemoteFetchError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, http.StatusNotFound, rfe.StatusCode)
	assert.Equal(t, 1, m.Calls("nope"))
}

func TestInMem_EmptyRoot(t *testing.T) {
	m := adapters.NewInMem()

	entries, err := m.FetchContents(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
