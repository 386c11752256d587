// Package readability provides a go-readability-backed secondary extraction
// source. Its article parse contributes byline, excerpt and lead-image
// candidates that no meta tag declares.
package readability

import (
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/unfurlkit/unfurl"
)

// Ensure Source implements unfurl.Source at compile time.
var _ unfurl.Source = (*Source)(nil)

// Source extracts canonical-field candidates from a readability parse.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "readability"
}

// Extract runs a readability parse and maps its article fields onto
// canonical metadata candidates.
func (s *Source) Extract(html string, base *url.URL) (map[string]string, error) {
	if html == "" {
		return nil, unfurl.Errorf(unfurl.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), base)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	set(fields, unfurl.FieldTitle, article.Title)
	set(fields, unfurl.FieldAuthor, article.Byline)
	set(fields, unfurl.FieldDescription, article.Excerpt)
	set(fields, unfurl.FieldImage, article.Image)
	set(fields, unfurl.FieldFavicon, article.Favicon)
	set(fields, unfurl.FieldPublisher, article.SiteName)
	set(fields, unfurl.FieldLanguage, article.Language)
	if article.PublishedTime != nil {
		set(fields, unfurl.FieldDate, article.PublishedTime.UTC().Format(time.RFC3339))
	}
	return fields, nil
}

func set(fields map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		fields[key] = v
	}
}
