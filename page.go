package unfurl

import (
	"net/url"
	"strings"
)

// Page is a fetched HTML document. It is owned by a single pipeline
// invocation and never shared across requests.
type Page struct {
	// FinalURL is the URL after following redirects; it may differ from
	// the requested URL.
	FinalURL string

	// HTML is the raw response body, not yet parsed.
	HTML string
}

// ValidateURL reports whether raw is a well-formed absolute URL with both a
// scheme and a host. It performs no network access. A failure carries
// EINVALID so callers can reject the input before any fetch is attempted.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return Errorf(EINVALID, "url required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid url: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "url must be absolute with a scheme and host")
	}
	return nil
}
