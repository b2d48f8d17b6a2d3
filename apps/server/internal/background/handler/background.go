package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/apps/server/internal/background"
	"github.com/tilsley/gallery/pkg/api"
)

// Current handles GET /background.
func (h *Handler) Current(c *gin.Context) {
	cfg, err := h.svc.Current(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load background", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no background configured"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Update handles PUT /background.
func (h *Handler) Update(c *gin.Context) {
	h.saveWith(c, h.svc.Update)
}

// Sync handles POST /background/sync, where a client pushes the background it
// is currently showing.
func (h *Handler) Sync(c *gin.Context) {
	h.saveWith(c, h.svc.Sync)
}

// Presets handles GET /background/presets.
func (h *Handler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, api.PresetList{Presets: h.svc.Presets()})
}

// ApplyPreset handles POST /background/presets/:name/apply.
func (h *Handler) ApplyPreset(c *gin.Context) {
	cfg, err := h.svc.ApplyPreset(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) saveWith(c *gin.Context, save func(context.Context, api.BackgroundConfig) (*api.BackgroundConfig, error)) {
	var req api.BackgroundConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	cfg, err := save(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var invalid background.InvalidConfigError
	var notFound background.PresetNotFoundError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		h.log.Error("background request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}
