package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/apps/server/internal/gallery/adapters"
	"github.com/tilsley/gallery/apps/server/internal/gallery/handler"
	"github.com/tilsley/gallery/apps/server/internal/platform/validation"
	"github.com/tilsley/gallery/pkg/logging"
	"github.com/tilsley/gallery/schemas"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ─── Test server builder ──────────────────────────────────────────────────────

type testServer struct {
	router  *gin.Engine
	fetcher *adapters.InMem
	client  *gallery.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{fetcher: adapters.NewInMem()}
	ts.client = gallery.NewClient(ts.fetcher, gallery.NewMemoryCache(), gallery.Config{}, logging.Discard())
	r := gin.New()
	handler.RegisterRoutes(r, ts.client, logging.Discard())
	ts.router = r
	return ts
}

func newTestServerWithValidation(t *testing.T) *testServer {
	t.Helper()
	ts := newTestServer(t)
	mw, err := validation.New(schemas.OpenAPISpec)
	require.NoError(t, err)
	r := gin.New()
	r.Use(mw)
	handler.RegisterRoutes(r, ts.client, logging.Discard())
	ts.router = r
	return ts
}

func (ts *testServer) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, &bytes.Buffer{})
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
