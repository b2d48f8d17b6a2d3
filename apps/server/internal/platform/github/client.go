// Package github builds go-github clients for the gallery fetcher. Requests
// are unauthenticated; pass a custom base URL (e.g. "http://localhost:9090")
// to target the mock server instead of api.github.com.
package github

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v75/github"
)

const defaultAPIURL = "https://api.github.com"

// NewClient creates a *github.Client using httpClient (nil means a default
// client). An empty baseURL keeps the public GitHub API.
func NewClient(baseURL string, httpClient *http.Client) (*gogithub.Client, error) {
	c := gogithub.NewClient(httpClient)
	if err := applyBaseURL(c, baseURL); err != nil {
		return nil, err
	}
	return c, nil
}

func applyBaseURL(c *gogithub.Client, baseURL string) error {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" || baseURL == defaultAPIURL {
		return nil
	}
	u, err := url.Parse(baseURL + "/")
	if err != nil {
		return fmt.Errorf("parse github base url %q: %w", baseURL, err)
	}
	c.BaseURL = u
	return nil
}
