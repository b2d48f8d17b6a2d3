package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
)

// DegradedHeader is set on responses built from a fallback after a failure.
const DegradedHeader = "X-Gallery-Degraded"

// Handler translates HTTP requests into calls on the gallery.Client.
type Handler struct {
	client *gallery.Client
	log    *slog.Logger
}

// RegisterRoutes mounts the gallery API onto the given Gin engine.
func RegisterRoutes(r *gin.Engine, client *gallery.Client, log *slog.Logger) {
	h := &Handler{client: client, log: log}

	r.GET("/contents", h.Contents)
	r.GET("/folders", h.Folders)
	r.GET("/images", h.Images)
	r.GET("/cover", h.Cover)
	r.GET("/projects", h.Projects)
	r.GET("/thumbnail", h.Thumbnail)

	r.POST("/cache/clear", h.ClearCache)
}
