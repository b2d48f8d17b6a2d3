package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/pkg/api"
)

// Contents returns the raw listing for ?path=. Upstream failures map to 502.
func (h *Handler) Contents(c *gin.Context) {
	path := c.Query("path")
	entries, err := h.client.GetContents(c.Request.Context(), path)
	if err != nil {
		h.log.Error("get contents failed", "path", path, "error", err)
		resp := api.ErrorResponse{Error: err.Error()}
		var rfe gallery.RemoteFetchError
		if errors.As(err, &rfe) && rfe.StatusCode != 0 {
			status := rfe.StatusCode
			resp.Status = &status
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Folders lists the gallery folders.
func (h *Handler) Folders(c *gin.Context) {
	respond(c, h.client.ListFolders(c.Request.Context()))
}

// Images lists the images in ?path=.
func (h *Handler) Images(c *gin.Context) {
	path, ok := requiredQuery(c, "path")
	if !ok {
		return
	}
	respond(c, h.client.ListImages(c.Request.Context(), path))
}

// Cover returns the cover thumbnail of ?path=, or null when it has no images.
func (h *Handler) Cover(c *gin.Context) {
	path, ok := requiredQuery(c, "path")
	if !ok {
		return
	}
	cover := h.client.CoverImage(c.Request.Context(), path)
	resp := api.CoverResponse{}
	if cover.Value != "" {
		resp.CoverImageUrl = &cover.Value
	}
	if cover.Degraded() {
		c.Header(DegradedHeader, "true")
	}
	c.JSON(http.StatusOK, resp)
}

// Projects returns the assembled gallery projects.
func (h *Handler) Projects(c *gin.Context) {
	respond(c, h.client.ListProjectsWithCovers(c.Request.Context()))
}

// Thumbnail builds a resizing-proxy URL for ?url= at ?w= x ?h=.
func (h *Handler) Thumbnail(c *gin.Context) {
	original, ok := requiredQuery(c, "url")
	if !ok {
		return
	}
	w, okW := positiveQuery(c, "w", gallery.DefaultThumbnailWidth)
	hgt, okH := positiveQuery(c, "h", gallery.DefaultThumbnailHeight)
	if !okW || !okH {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "w and h must be positive integers"})
		return
	}
	c.JSON(http.StatusOK, api.ThumbnailResponse{Url: h.client.BuildThumbnailURL(original, w, hgt)})
}

// ClearCache empties the contents cache.
func (h *Handler) ClearCache(c *gin.Context) {
	h.client.ClearCache(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func respond[T any](c *gin.Context, o gallery.Outcome[T]) {
	if o.Degraded() {
		c.Header(DegradedHeader, "true")
	}
	c.JSON(http.StatusOK, o.Value)
}

func requiredQuery(c *gin.Context, name string) (string, bool) {
	v := c.Query(name)
	if v == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: name + " query parameter is required"})
		return "", false
	}
	return v, true
}

func positiveQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
