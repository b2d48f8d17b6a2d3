package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tilsley/gallery/apps/server/internal/background"
	bghandler "github.com/tilsley/gallery/apps/server/internal/background/handler"
	bgstore "github.com/tilsley/gallery/apps/server/internal/background/store"
	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/apps/server/internal/gallery/adapters"
	"github.com/tilsley/gallery/apps/server/internal/gallery/handler"
	"github.com/tilsley/gallery/apps/server/internal/gallery/store"
	"github.com/tilsley/gallery/apps/server/internal/platform/config"
	platformgithub "github.com/tilsley/gallery/apps/server/internal/platform/github"
	"github.com/tilsley/gallery/apps/server/internal/platform/logger"
	platformredis "github.com/tilsley/gallery/apps/server/internal/platform/redis"
	"github.com/tilsley/gallery/apps/server/internal/platform/telemetry"
	"github.com/tilsley/gallery/apps/server/internal/platform/validation"
	"github.com/tilsley/gallery/schemas"
)

func main() {
	slog := logger.New(telemetry.ServiceName())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// --- Observability ---

	ctx := context.Background()
	tel, err := telemetry.New(ctx, cfg.OtelEnabled)
	if err != nil {
		slog.Error("telemetry init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	// --- Platform: Redis (optional) ---

	var rdb *goredis.Client
	if cfg.CacheBackend == config.CacheRedis {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rdb, err = platformredis.New(pingCtx, cfg.RedisAddr)
		cancel()
		if err != nil {
			slog.Error("redis init failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1) //nolint:gocritic // telemetry flush is best-effort
		}
		defer rdb.Close()
	}

	// --- Adapters ---

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var fetcher gallery.ContentsFetcher
	switch cfg.Fetcher {
	case config.FetcherHTTP:
		fetcher = adapters.NewHTTPFetcher(cfg.GitHubAPIURL, cfg.Owner, cfg.Repo, httpClient)
	default:
		gh, err := platformgithub.NewClient(cfg.GitHubAPIURL, httpClient)
		if err != nil {
			slog.Error("github client init failed", "url", cfg.GitHubAPIURL, "error", err)
			os.Exit(1)
		}
		fetcher = adapters.NewGitHubFetcher(gh, cfg.Owner, cfg.Repo)
	}

	var cache gallery.Cache = gallery.NewMemoryCache()
	var bgStore background.Store = background.NewMemoryStore()
	if rdb != nil {
		cache = store.NewRedisCache(rdb, cfg.CacheTTL)
		bgStore = bgstore.NewRedisStore(rdb)
	}

	// --- Services ---

	clientCfg := gallery.Config{
		TTL:              cfg.CacheTTL,
		ThumbnailBaseURL: cfg.ThumbnailBaseURL,
		DefaultCover:     cfg.DefaultCover,
		FanOutLimit:      cfg.FanOutLimit,
	}
	if len(cfg.CoverKeywords) > 0 {
		clientCfg.IsCover = gallery.KeywordCover(cfg.CoverKeywords...)
	}
	galleryClient := gallery.NewClient(fetcher, cache, clientCfg, slog)

	presets := background.DefaultPresets()
	for name, p := range cfg.Presets {
		presets[name] = p
	}
	bgSvc := background.NewService(bgStore, presets, slog)

	// --- HTTP ---

	router := gin.New()

	validator, err := validation.New(schemas.OpenAPISpec)
	if err != nil {
		slog.Error("openapi validation middleware init failed", "error", err)
		os.Exit(1)
	}

	router.Use(gin.Recovery(), otelgin.Middleware(telemetry.ServiceName()), validator)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router, galleryClient, slog)
	bghandler.RegisterRoutes(router, bgSvc, slog)

	slog.Info("starting gallery",
		"port", cfg.Port,
		"repo", cfg.Owner+"/"+cfg.Repo,
		"fetcher", cfg.Fetcher,
		"cache", cfg.CacheBackend,
		"ttl", cfg.CacheTTL,
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
