package extract

import (
	"net/url"
	"strings"
)

// Resolve turns candidate into an absolute, fetchable URL. A candidate that
// already carries a scheme passes through unchanged; anything else is
// resolved against base per standard URL-resolution rules (scheme-relative,
// absolute-path and relative references all supported). Candidates that
// cannot be resolved are dropped: the empty string means absent, not error.
func Resolve(base *url.URL, candidate string) string {
	c := strings.TrimSpace(candidate)
	if c == "" || isNonHTTPLink(c) {
		return ""
	}
	ref, err := url.Parse(c)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return c
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a candidate is a non-HTTP reference that should
// never surface as a resolved URL.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
