// Package trafilatura provides a go-trafilatura-backed secondary extraction
// source. Trafilatura mines structured data (JSON-LD, microdata) and page
// text for author, date and site-name candidates.
package trafilatura

import (
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/unfurlkit/unfurl"
)

// Ensure Source implements unfurl.Source at compile time.
var _ unfurl.Source = (*Source)(nil)

// Source extracts canonical-field candidates from a trafilatura parse.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "trafilatura"
}

// Extract runs trafilatura over the document and maps its metadata onto
// canonical candidates.
func (s *Source) Extract(html string, base *url.URL) (map[string]string, error) {
	if html == "" {
		return nil, unfurl.Errorf(unfurl.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    base,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return nil, err
	}

	meta := result.Metadata
	fields := make(map[string]string)
	set(fields, unfurl.FieldTitle, meta.Title)
	set(fields, unfurl.FieldAuthor, meta.Author)
	set(fields, unfurl.FieldDescription, meta.Description)
	set(fields, unfurl.FieldPublisher, meta.Sitename)
	set(fields, unfurl.FieldImage, meta.Image)
	set(fields, unfurl.FieldLanguage, meta.Language)
	if !meta.Date.IsZero() {
		set(fields, unfurl.FieldDate, meta.Date.UTC().Format(time.RFC3339))
	}
	return fields, nil
}

func set(fields map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		fields[key] = v
	}
}
