// Package api holds the wire types shared by the gallery server, the mock
// GitHub server and their tests.
package api

// ContentEntry is one item of a GitHub contents API directory listing.
type ContentEntry struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Type        string  `json:"type"` // "file" or "dir"
	Size        int64   `json:"size"`
	Sha         string  `json:"sha"`
	DownloadUrl *string `json:"download_url"`
	HtmlUrl     *string `json:"html_url"`
}

// Folder is a top-level directory of the gallery repository.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Url  string `json:"url"`
}

// Image is a picture file inside a gallery folder.
type Image struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	DownloadUrl string `json:"downloadUrl"`
	Size        int64  `json:"size"`
	SizeLabel   string `json:"sizeLabel"`
	Sha         string `json:"sha"`
}

// GalleryProject is the view model the front end renders for one folder.
type GalleryProject struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Text          string  `json:"text"`
	CoverImageUrl string  `json:"coverImageUrl"`
	Path          string  `json:"path"`
	ImageCount    int     `json:"imageCount"`
	ActionLabel   string  `json:"actionLabel"`
	ExternalUrl   *string `json:"externalUrl"`
	Visible       bool    `json:"visible"`
}

// CoverResponse is returned by GET /cover. CoverImageUrl is null when the
// folder holds no images.
type CoverResponse struct {
	CoverImageUrl *string `json:"coverImageUrl"`
}

// ThumbnailResponse is returned by GET /thumbnail.
type ThumbnailResponse struct {
	Url string `json:"url"`
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status *int   `json:"status,omitempty"`
}
