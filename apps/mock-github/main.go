package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/pkg/logging"
)

func main() {
	log := logging.New().With("service", "mock-github")

	publicURL := strings.TrimSuffix(envOr("PUBLIC_URL", "http://localhost:9090"), "/")
	s := newStore()
	if err := seedRepos(s); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seeded repos", "repos", s.repoCount())

	r := gin.New()
	r.Use(gin.Recovery())
	registerRoutes(r, s, publicURL, log)

	port := envOr("PORT", "9090")
	log.Info("mock-github starting", "port", port, "publicURL", publicURL)
	if err := r.Run(":" + port); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requestLogger is a slimmer gin.Logger that goes through slog.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status())
	}
}
