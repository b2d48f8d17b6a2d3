package main

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/gallery/pkg/api"
)

func registerRoutes(r *gin.Engine, s *store, publicURL string, log *slog.Logger) {
	r.Use(requestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// GitHub-compatible contents endpoint. A directory yields an array of
	// entries; an exact file path yields a single object with base64 content.
	contents := func(c *gin.Context) {
		owner, repo := c.Param("owner"), c.Param("repo")
		p := strings.Trim(c.Param("path"), "/")

		if content, ok := s.getFile(owner, repo, p); ok {
			c.JSON(http.StatusOK, gin.H{
				"type":         "file",
				"name":         path.Base(p),
				"path":         p,
				"size":         len(content),
				"sha":          blobSHA(content),
				"download_url": rawURL(publicURL, owner, repo, p),
				"html_url":     htmlURL(publicURL, owner, repo, "blob", p),
				"content":      base64.StdEncoding.EncodeToString(content),
				"encoding":     "base64",
			})
			return
		}

		nodes, ok := s.listDir(owner, repo, p)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"message":           "Not Found",
				"documentation_url": "https://docs.github.com/rest/repos/contents#get-repository-content",
			})
			log.Info("contents not found", "repo", owner+"/"+repo, "path", p)
			return
		}

		out := make([]api.ContentEntry, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, toEntry(publicURL, owner, repo, n))
		}
		c.JSON(http.StatusOK, out)
	}
	r.GET("/repos/:owner/:repo/contents/*path", contents)

	// Raw file bytes, what download_url points at.
	r.GET("/raw/:owner/:repo/*path", func(c *gin.Context) {
		p := strings.Trim(c.Param("path"), "/")
		content, ok := s.getFile(c.Param("owner"), c.Param("repo"), p)
		if !ok {
			c.String(http.StatusNotFound, "404: Not Found")
			return
		}
		ct := mime.TypeByExtension(path.Ext(p))
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Data(http.StatusOK, ct, content)
	})
}

func toEntry(publicURL, owner, repo string, n node) api.ContentEntry {
	e := api.ContentEntry{Name: n.name, Path: n.path, Sha: n.sha}
	if n.isDir {
		e.Type = "dir"
		html := htmlURL(publicURL, owner, repo, "tree", n.path)
		e.HtmlUrl = &html
		return e
	}
	e.Type = "file"
	e.Size = int64(n.size)
	download := rawURL(publicURL, owner, repo, n.path)
	html := htmlURL(publicURL, owner, repo, "blob", n.path)
	e.DownloadUrl = &download
	e.HtmlUrl = &html
	return e
}

func rawURL(publicURL, owner, repo, p string) string {
	return fmt.Sprintf("%s/raw/%s/%s/%s", publicURL, owner, repo, escapeSegments(p))
}

func htmlURL(publicURL, owner, repo, kind, p string) string {
	return fmt.Sprintf("%s/%s/%s/%s/main/%s", publicURL, owner, repo, kind, escapeSegments(p))
}

func escapeSegments(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
