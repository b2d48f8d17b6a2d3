// Package adapters implements gallery.ContentsFetcher against the GitHub
// contents API (go-github or plain net/http) and in memory for tests.
package adapters

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v75/github"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
	"github.com/tilsley/gallery/pkg/api"
)

// Compile-time check: *GitHubFetcher implements gallery.ContentsFetcher.
var _ gallery.ContentsFetcher = (*GitHubFetcher)(nil)

// GitHubFetcher wraps a go-github client bound to one repository.
// Build the client with apps/server/internal/platform/github.
type GitHubFetcher struct {
	gh    *gogithub.Client
	owner string
	repo  string
}

// NewGitHubFetcher creates a GitHubFetcher for owner/repo.
func NewGitHubFetcher(gh *gogithub.Client, owner, repo string) *GitHubFetcher {
	return &GitHubFetcher{gh: gh, owner: owner, repo: repo}
}

// FetchContents lists dirPath. Non-2xx replies become a RemoteFetchError
// carrying the status code.
func (f *GitHubFetcher) FetchContents(ctx context.Context, dirPath string) ([]api.ContentEntry, error) {
	file, dir, resp, err := f.gh.Repositories.GetContents(ctx, f.owner, f.repo, dirPath, nil)
	if err != nil {
		rfe := gallery.RemoteFetchError{
			Path: dirPath,
			Err:  fmt.Errorf("get contents %s/%s/%s: %w", f.owner, f.repo, dirPath, err),
		}
		if resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
			rfe.StatusCode = resp.StatusCode
		}
		return nil, rfe
	}

	if file != nil {
		return []api.ContentEntry{toEntry(file)}, nil
	}
	entries := make([]api.ContentEntry, 0, len(dir))
	for _, rc := range dir {
		entries = append(entries, toEntry(rc))
	}
	return entries, nil
}

func toEntry(rc *gogithub.RepositoryContent) api.ContentEntry {
	return api.ContentEntry{
		Name:        rc.GetName(),
		Path:        rc.GetPath(),
		Type:        rc.GetType(),
		Size:        int64(rc.GetSize()),
		Sha:         rc.GetSHA(),
		DownloadUrl: rc.DownloadURL,
		HtmlUrl:     rc.HTMLURL,
	}
}
