package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/apps/server/internal/background"
)

// Handler translates HTTP requests into background.Service calls.
type Handler struct {
	svc *background.Service
	log *slog.Logger
}

// RegisterRoutes mounts the background API onto the given Gin engine.
func RegisterRoutes(r *gin.Engine, svc *background.Service, log *slog.Logger) {
	h := &Handler{svc: svc, log: log}

	r.GET("/background", h.Current)
	r.PUT("/background", h.Update)
	r.POST("/background/sync", h.Sync)
	r.GET("/background/presets", h.Presets)
	r.POST("/background/presets/:name/apply", h.ApplyPreset)
}
