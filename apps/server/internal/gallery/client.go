// Package gallery turns a GitHub repository of photo folders into a browsable
// project gallery. The Client caches contents listings for a short TTL, keeps
// only image files, picks a cover per folder and builds thumbnail URLs.
//
// GetContents reports errors. The List* and CoverImage methods are
// best-effort: they log failures and return an Outcome with an empty value
// and a Diagnostic instead of an error.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tilsley/gallery/pkg/api"
)

const instrName = "github.com/tilsley/gallery"

// DefaultTTL is how long a contents listing is served from cache.
const DefaultTTL = 5 * time.Minute

// DefaultCoverImage is used for projects without any image.
const DefaultCoverImage = "/img/sunshine.jpg"

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true, "svg": true,
}

// Config tunes a Client. Zero fields fall back to defaults.
type Config struct {
	TTL              time.Duration
	Now              func() time.Time
	ThumbnailBaseURL string
	DefaultCover     string
	IsCover          CoverPredicate
	// FanOutLimit caps concurrent per-folder lookups; 0 means unbounded.
	FanOutLimit int
}

func (c Config) withDefaults() Config {
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ThumbnailBaseURL == "" {
		c.ThumbnailBaseURL = DefaultThumbnailBaseURL
	}
	if c.DefaultCover == "" {
		c.DefaultCover = DefaultCoverImage
	}
	if c.IsCover == nil {
		c.IsCover = KeywordCover(DefaultCoverKeywords...)
	}
	return c
}

// Client is the repository gallery client.
type Client struct {
	fetcher ContentsFetcher
	cache   Cache
	cfg     Config
	log     *slog.Logger

	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
	fetchErrors metric.Int64Counter
}

// NewClient creates a Client. A nil cache gets a fresh MemoryCache.
func NewClient(fetcher ContentsFetcher, cache Cache, cfg Config, log *slog.Logger) *Client {
	if cache == nil {
		cache = NewMemoryCache()
	}
	m := otel.Meter(instrName)
	cacheHits, _ := m.Int64Counter("gallery.cache.hits",
		metric.WithDescription("Contents listings served from cache"))
	cacheMisses, _ := m.Int64Counter("gallery.cache.misses",
		metric.WithDescription("Contents listings fetched from the remote API"))
	fetchErrors, _ := m.Int64Counter("gallery.fetch.errors",
		metric.WithDescription("Failed contents API requests"))

	return &Client{
		fetcher:     fetcher,
		cache:       cache,
		cfg:         cfg.withDefaults(),
		log:         log,
		cacheHits:   cacheHits,
		cacheMisses: cacheMisses,
		fetchErrors: fetchErrors,
	}
}

func cacheKey(path string) string {
	return "contents:" + path
}

// GetContents returns the listing for path ("" is the repository root),
// serving it from cache while the cached copy is younger than the TTL. The
// returned slice is a copy; changing it does not touch the cache.
func (c *Client) GetContents(ctx context.Context, path string) ([]api.ContentEntry, error) {
	ctx, span := otel.Tracer(instrName).Start(ctx, "GetContents",
		trace.WithAttributes(attribute.String("contents.path", path)),
	)
	defer span.End()

	key := cacheKey(path)
	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("contents cache read failed", "path", path, "error", err)
	} else if cached != nil && c.cfg.Now().Sub(cached.StoredAt) < c.cfg.TTL {
		c.cacheHits.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return slices.Clone(cached.Payload), nil
	}
	c.cacheMisses.Add(ctx, 1)

	entries, err := c.fetcher.FetchContents(ctx, path)
	if err != nil {
		c.fetchErrors.Add(ctx, 1)
		span.RecordError(err)
		var rfe RemoteFetchError
		if !errors.As(err, &rfe) {
			err = RemoteFetchError{Path: path, Err: err}
		}
		return nil, err
	}
	if entries == nil {
		entries = []api.ContentEntry{}
	}

	entry := CacheEntry{Key: key, Payload: entries, StoredAt: c.cfg.Now()}
	if err := c.cache.Set(ctx, entry); err != nil {
		c.log.Warn("contents cache write failed", "path", path, "error", err)
	}
	return slices.Clone(entries), nil
}

// ListFolders returns the directories at the repository root in API order.
func (c *Client) ListFolders(ctx context.Context) Outcome[[]api.Folder] {
	entries, err := c.GetContents(ctx, "")
	if err != nil {
		c.log.Warn("list folders failed", "error", err)
		return degraded([]api.Folder{}, fmt.Errorf("list folders: %w", err))
	}

	folders := make([]api.Folder, 0, len(entries))
	for _, e := range entries {
		if e.Type != entryTypeDir {
			continue
		}
		folders = append(folders, api.Folder{Name: e.Name, Path: e.Path, Url: deref(e.HtmlUrl)})
	}
	return succeeded(folders)
}

// ListImages returns the image files directly inside projectPath.
func (c *Client) ListImages(ctx context.Context, projectPath string) Outcome[[]api.Image] {
	entries, err := c.GetContents(ctx, projectPath)
	if err != nil {
		c.log.Warn("list images failed", "path", projectPath, "error", err)
		return degraded([]api.Image{}, fmt.Errorf("list images in %q: %w", projectPath, err))
	}

	images := make([]api.Image, 0, len(entries))
	for _, e := range entries {
		if e.Type != entryTypeFile || !IsImage(e.Name) {
			continue
		}
		images = append(images, api.Image{
			Name:        e.Name,
			Path:        e.Path,
			DownloadUrl: deref(e.DownloadUrl),
			Size:        e.Size,
			SizeLabel:   humanize.Bytes(uint64(max(e.Size, 0))),
			Sha:         e.Sha,
		})
	}
	return succeeded(images)
}

// IsImage reports whether name carries one of the supported image extensions.
// The extension is whatever follows the last '.', compared case-insensitively.
func IsImage(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return imageExtensions[strings.ToLower(name[i+1:])]
}

// BuildThumbnailURL returns the resizing-proxy URL for originalURL.
func (c *Client) BuildThumbnailURL(originalURL string, width, height int) string {
	return ThumbnailURL(c.cfg.ThumbnailBaseURL, originalURL, width, height)
}

// CoverImage returns the cover thumbnail for projectPath, or "" when the
// folder has no images.
func (c *Client) CoverImage(ctx context.Context, projectPath string) Outcome[string] {
	images := c.ListImages(ctx, projectPath)
	return Outcome[string]{Value: c.coverFor(images.Value), Diagnostic: images.Diagnostic}
}

func (c *Client) coverFor(images []api.Image) string {
	if len(images) == 0 {
		return ""
	}
	chosen := images[0]
	for _, img := range images {
		if c.cfg.IsCover(img.Name) {
			chosen = img
			break
		}
	}
	return c.BuildThumbnailURL(chosen.DownloadUrl, CoverWidth, CoverHeight)
}

// ListProjectsWithCovers builds one GalleryProject per root folder. Folders
// are resolved concurrently; the result keeps the folder listing order.
func (c *Client) ListProjectsWithCovers(ctx context.Context) Outcome[[]api.GalleryProject] {
	folders := c.ListFolders(ctx)
	if folders.Degraded() {
		return degraded([]api.GalleryProject{}, folders.Diagnostic)
	}

	projects := make([]api.GalleryProject, len(folders.Value))
	var g errgroup.Group
	if c.cfg.FanOutLimit > 0 {
		g.SetLimit(c.cfg.FanOutLimit)
	}
	for i, folder := range folders.Value {
		g.Go(func() error {
			projects[i] = c.buildProject(ctx, folder)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // branches never return errors

	return succeeded(projects)
}

func (c *Client) buildProject(ctx context.Context, folder api.Folder) api.GalleryProject {
	images := c.ListImages(ctx, folder.Path)
	cover := c.coverFor(images.Value)
	if cover == "" {
		cover = c.cfg.DefaultCover
	}
	n := len(images.Value)

	return api.GalleryProject{
		Id:            folder.Path,
		Name:          folder.Name,
		Title:         folder.Name,
		Subtitle:      fmt.Sprintf("%d photos", n),
		Text:          fmt.Sprintf("View all photos in %s", folder.Name),
		CoverImageUrl: cover,
		Path:          folder.Path,
		ImageCount:    n,
		ActionLabel:   "📸 View",
		ExternalUrl:   nil,
		Visible:       false,
	}
}

// ClearCache drops every cached listing. Failures are logged.
func (c *Client) ClearCache(ctx context.Context) {
	if err := c.cache.Clear(ctx); err != nil {
		c.log.Warn("clear contents cache failed", "error", err)
		return
	}
	c.log.Info("contents cache cleared")
}
