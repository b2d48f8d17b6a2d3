package gallery

import "strings"

// CoverPredicate reports whether an image file name marks a folder's cover.
type CoverPredicate func(name string) bool

// DefaultCoverKeywords are the markers used by the photo repository.
var DefaultCoverKeywords = []string{"cover", "封面"}

// KeywordCover matches names containing any of keywords, ignoring case.
// Empty keywords are ignored.
func KeywordCover(keywords ...string) CoverPredicate {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return func(name string) bool {
		n := strings.ToLower(name)
		for _, k := range lowered {
			if strings.Contains(n, k) {
				return true
			}
		}
		return false
	}
}
