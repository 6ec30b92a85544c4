package render

import (
	"regexp"
	"strings"
)

var imgSrcPattern = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// AbsoluteURL prefixes a stored asset path with the asset base URL.
// Already-absolute URLs pass through unchanged, so the rewrite is
// idempotent: AbsoluteURL(base, AbsoluteURL(base, p)) == AbsoluteURL(base, p).
func AbsoluteURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ExtractImageURLs pulls the inline image sources out of a content body
// in document order, normalized against the asset base.
func ExtractImageURLs(base, body string) []string {
	matches := imgSrcPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		urls = append(urls, AbsoluteURL(base, match[1]))
	}

	return urls
}
