// Package config loads the server configuration from environment variables,
// optionally layered over a YAML file named by GALLERY_CONFIG.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tilsley/gallery/pkg/api"
)

// Fetcher backends.
const (
	FetcherGitHub = "github"
	FetcherHTTP   = "http"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the resolved server configuration.
type Config struct {
	Port             string
	GitHubAPIURL     string
	Owner            string
	Repo             string
	Fetcher          string
	CacheTTL         time.Duration
	CacheBackend     string
	RedisAddr        string
	ThumbnailBaseURL string
	DefaultCover     string
	FanOutLimit      int
	HTTPTimeout      time.Duration
	OtelEnabled      bool

	// From the YAML file only.
	CoverKeywords []string
	Presets       map[string]api.BackgroundConfig
}

// File is the YAML configuration file. Every scalar can be overridden by the
// matching environment variable.
type File struct {
	Owner            string                          `yaml:"owner"`
	Repo             string                          `yaml:"repo"`
	Fetcher          string                          `yaml:"fetcher"`
	CacheTTL         string                          `yaml:"cacheTTL"`
	CacheBackend     string                          `yaml:"cacheBackend"`
	RedisAddr        string                          `yaml:"redisAddr"`
	ThumbnailBaseURL string                          `yaml:"thumbnailBaseURL"`
	DefaultCover     string                          `yaml:"defaultCover"`
	CoverKeywords    []string                        `yaml:"coverKeywords"`
	Presets          map[string]api.BackgroundConfig `yaml:"presets"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom resolves the configuration using getenv for lookups.
func LoadFrom(getenv func(string) string) (Config, error) {
	var file File
	if path := getenv("GALLERY_CONFIG"); path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		file = f
	}

	env := func(key, fromFile, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		if fromFile != "" {
			return fromFile
		}
		return fallback
	}

	cfg := Config{
		Port:             env("PORT", "", "8080"),
		GitHubAPIURL:     env("GITHUB_API_URL", "", "https://api.github.com/"),
		Owner:            env("GALLERY_OWNER", file.Owner, "charrrrls"),
		Repo:             env("GALLERY_REPO", file.Repo, "mypic"),
		Fetcher:          env("FETCHER", file.Fetcher, FetcherGitHub),
		CacheBackend:     env("CACHE_BACKEND", file.CacheBackend, CacheMemory),
		RedisAddr:        env("REDIS_ADDR", file.RedisAddr, "localhost:6379"),
		ThumbnailBaseURL: env("THUMBNAIL_BASE_URL", file.ThumbnailBaseURL, ""),
		DefaultCover:     env("DEFAULT_COVER", file.DefaultCover, ""),
		OtelEnabled:      getenv("OTEL_ENABLED") == "true",
		CoverKeywords:    file.CoverKeywords,
		Presets:          file.Presets,
	}

	var err error
	if cfg.CacheTTL, err = parseDuration("CACHE_TTL", env("CACHE_TTL", file.CacheTTL, "5m")); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", env("HTTP_TIMEOUT", "", "10s")); err != nil {
		return Config{}, err
	}
	if raw := getenv("FANOUT_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("config: FANOUT_LIMIT must be a non-negative integer, got %q", raw)
		}
		cfg.FanOutLimit = n
	}

	switch cfg.Fetcher {
	case FetcherGitHub, FetcherHTTP:
	default:
		return Config{}, fmt.Errorf("config: FETCHER must be %q or %q, got %q", FetcherGitHub, FetcherHTTP, cfg.Fetcher)
	}
	switch cfg.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		return Config{}, fmt.Errorf("config: CACHE_BACKEND must be %q or %q, got %q", CacheMemory, CacheRedis, cfg.CacheBackend)
	}
	return cfg, nil
}

// ReadFile parses the YAML configuration file at path.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return File{}, fmt.Errorf("read config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return f, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}
