package unfurl

import (
	"context"
	"net/url"
)

// Element is a single node in a parsed document.
type Element interface {
	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the element.
	Text() string
}

// Document is a queryable parsed HTML document. Querying is read-only, so a
// Document may be shared by concurrent readers within one extraction.
type Document interface {
	// Select returns all elements matching the CSS selector in document
	// order. A selector with no matches returns an empty slice.
	Select(selector string) []Element
}

// Parser parses raw HTML into a queryable Document. The parsing backend is
// swappable without touching extractor logic.
type Parser interface {
	Parse(html string) (Document, error)
}

// Strategy extracts one candidate value for a field from a document.
// Strategies are pure: they never error, and absence is the empty string.
type Strategy func(doc Document) string

// Source derives candidate canonical-field values from raw HTML using an
// independent parsing backend. Sources rank below rule-based strategies and
// are best-effort: a failing source contributes nothing.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Extract returns candidate values keyed by canonical field name.
	// URL-valued candidates may be relative; resolution happens later.
	Extract(html string, base *url.URL) (map[string]string, error)
}

// Extractor turns a fetched page into a metadata record. Extraction never
// fails on missing data; only an unusable document or final URL is an error.
type Extractor interface {
	Extract(ctx context.Context, page *Page) (*Metadata, error)
}

// Service is the full pipeline: validate, fetch, extract.
type Service interface {
	// Unfurl fetches the URL and extracts everything machine-readable
	// about it. Invalid input fails with EINVALID before any network
	// call; an unreachable target fails with EUNAVAILABLE.
	Unfurl(ctx context.Context, url string) (*Metadata, error)
}
