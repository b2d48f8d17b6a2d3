package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/apps/server/internal/gallery/handler"
	"github.com/tilsley/gallery/pkg/api"
)

// ─── GET /contents ───────────────────────────────────────────────────────────

func TestContents_ReturnsListing(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("travel/a.jpg", 10)
	ts.fetcher.AddFile("README.md", 1)

	w := ts.do(http.MethodGet, "/contents")

	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]api.ContentEntry](t, w)
	require.Len(t, entries, 2)
	assert.Equal(t, "README.md", entries[0].Name)
	assert.Equal(t, "dir", entries[1].Type)
}

func TestContents_UpstreamStatus_Returns502WithStatus(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/contents?path=missing")

	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[api.ErrorResponse](t, w)
	require.NotNil(t, resp.Status)
	assert.Equal(t, http.StatusNotFound, *resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestContents_TransportFailure_Returns502WithoutStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.Fail("", errors.New("connection refused"))

	w := ts.do(http.MethodGet, "/contents")

	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[api.ErrorResponse](t, w)
	assert.Nil(t, resp.Status)
	assert.Contains(t, resp.Error, "connection refused")
}

// ─── GET /folders ────────────────────────────────────────────────────────────

func TestFolders_OnlyDirectories(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("alps/a.jpg", 1)
	ts.fetcher.AddFile("zoo/b.jpg", 1)
	ts.fetcher.AddFile("README.md", 1)

	w := ts.do(http.MethodGet, "/folders")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(handler.DegradedHeader))
	folders := decode[[]api.Folder](t, w)
	require.Len(t, folders, 2)
	assert.Equal(t, "alps", folders[0].Name)
	assert.Equal(t, "zoo", folders[1].Path)
}

func TestFolders_Failure_ReturnsEmptyDegraded(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.Fail("", errors.New("boom"))

	w := ts.do(http.MethodGet, "/folders")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(handler.DegradedHeader))
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ─── GET /images ─────────────────────────────────────────────────────────────

func TestImages_FiltersNonImages(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("travel/a.JPG", 2048)
	ts.fetcher.AddFile("travel/notes.txt", 5)

	w := ts.do(http.MethodGet, "/images?path=travel")

	require.Equal(t, http.StatusOK, w.Code)
	images := decode[[]api.Image](t, w)
	require.Len(t, images, 1)
	assert.Equal(t, "a.JPG", images[0].Name)
	assert.Equal(t, int64(2048), images[0].Size)
	assert.Equal(t, "2.0 kB", images[0].SizeLabel)
}

func TestImages_MissingPath_Returns400(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/images")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImages_UnknownFolder_Degraded(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/images?path=nope")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(handler.DegradedHeader))
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ─── GET /cover ──────────────────────────────────────────────────────────────

func TestCover_PrefersKeyword(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("travel/a.jpg", 1)
	ts.fetcher.AddFile("travel/cover.png", 1)

	w := ts.do(http.MethodGet, "/cover?path=travel")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[api.CoverResponse](t, w)
	require.NotNil(t, resp.CoverImageUrl)
	assert.Contains(t, *resp.CoverImageUrl, "cover.png")
	assert.Contains(t, *resp.CoverImageUrl, "w=400&h=300")
}

func TestCover_NoImages_ReturnsNull(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("docs/readme.md", 1)

	w := ts.do(http.MethodGet, "/cover?path=docs")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"coverImageUrl":null}`, w.Body.String())
}

// ─── GET /projects ───────────────────────────────────────────────────────────

func TestProjects_BuildsOnePerFolder(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("alps/a.jpg", 1)
	ts.fetcher.AddFile("alps/b.jpg", 1)
	ts.fetcher.AddFile("empty/readme.md", 1)

	w := ts.do(http.MethodGet, "/projects")

	require.Equal(t, http.StatusOK, w.Code)
	projects := decode[[]api.GalleryProject](t, w)
	require.Len(t, projects, 2)
	assert.Equal(t, "alps", projects[0].Id)
	assert.Equal(t, "2 photos", projects[0].Subtitle)
	assert.Equal(t, gallery.DefaultCoverImage, projects[1].CoverImageUrl)
	assert.False(t, projects[1].Visible)
}

func TestProjects_RootFailure_Degraded(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.Fail("", errors.New("down"))

	w := ts.do(http.MethodGet, "/projects")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(handler.DegradedHeader))
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ─── GET /thumbnail ──────────────────────────────────────────────────────────

func TestThumbnail_Defaults(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/thumbnail?url=https%3A%2F%2Fx%2Fa%20b.png")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[api.ThumbnailResponse](t, w)
	assert.Equal(t, "https://images.weserv.nl/?url=https%3A%2F%2Fx%2Fa%20b.png&w=300&h=200&fit=cover&we", resp.Url)
}

func TestThumbnail_CustomSize(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/thumbnail?url=u&w=64&h=48")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[api.ThumbnailResponse](t, w).Url, "w=64&h=48")
}

func TestThumbnail_BadInput_Returns400(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/thumbnail").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/thumbnail?url=u&w=0").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/thumbnail?url=u&h=abc").Code)
}

// ─── POST /cache/clear ───────────────────────────────────────────────────────

func TestClearCache_ForcesRefetch(t *testing.T) {
	ts := newTestServer(t)
	ts.fetcher.AddFile("alps/a.jpg", 1)

	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/folders").Code)
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/folders").Code)
	require.Equal(t, 1, ts.fetcher.Calls(""))

	w := ts.do(http.MethodPost, "/cache/clear")
	require.Equal(t, http.StatusNoContent, w.Code)

	ts.do(http.MethodGet, "/folders")
	assert.Equal(t, 2, ts.fetcher.Calls(""))
}

// ─── request validation ──────────────────────────────────────────────────────

func TestValidation_ThumbnailWidthMustBeInteger(t *testing.T) {
	ts := newTestServerWithValidation(t)

	w := ts.do(http.MethodGet, "/thumbnail?url=u&w=wide")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidation_ValidRequestPasses(t *testing.T) {
	ts := newTestServerWithValidation(t)
	ts.fetcher.AddFile("alps/a.jpg", 1)

	w := ts.do(http.MethodGet, "/images?path=alps")

	assert.Equal(t, http.StatusOK, w.Code)
}
