package gallery

import (
	"fmt"
	"net/url"
	"strings"
)

// Thumbnail sizes.
const (
	DefaultThumbnailWidth  = 300
	DefaultThumbnailHeight = 200
	CoverWidth             = 400
	CoverHeight            = 300
)

// DefaultThumbnailBaseURL is the image-resizing proxy used when none is configured.
const DefaultThumbnailBaseURL = "https://images.weserv.nl/"

// ThumbnailURL returns a resizing-proxy URL for originalURL. The original is
// percent-encoded into the url query parameter; the proxy is never contacted.
func ThumbnailURL(baseURL, originalURL string, width, height int) string {
	return fmt.Sprintf("%s?url=%s&w=%d&h=%d&fit=cover&we",
		baseURL, encodeComponent(originalURL), width, height)
}

// encodeComponent percent-encodes s for use inside a query value, using %20
// rather than '+' for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
