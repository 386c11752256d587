// Package opengraph provides a go-opengraph-backed secondary extraction
// source. It understands Open Graph spellings the selector rules do not
// (name-attribute variants, secure image URLs, structured article data).
package opengraph

import (
	"net/url"
	"strings"
	"time"

	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/dyatlov/go-opengraph/opengraph/types/image"
	"github.com/unfurlkit/unfurl"
)

// Ensure Source implements unfurl.Source at compile time.
var _ unfurl.Source = (*Source)(nil)

// Source extracts canonical-field candidates from Open Graph markup.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "opengraph"
}

// Extract parses the document's Open Graph markup into candidate values.
func (s *Source) Extract(html string, _ *url.URL) (map[string]string, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	set(fields, unfurl.FieldTitle, og.Title)
	set(fields, unfurl.FieldDescription, og.Description)
	set(fields, unfurl.FieldPublisher, og.SiteName)
	set(fields, unfurl.FieldImage, bestImage(og.Images))
	if og.Article != nil && og.Article.PublishedTime != nil {
		set(fields, unfurl.FieldDate, og.Article.PublishedTime.UTC().Format(time.RFC3339))
	}
	return fields, nil
}

func set(fields map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		fields[key] = v
	}
}

// bestImage picks the largest declared image, preferring the secure URL.
// Images without declared dimensions rank below any sized image.
func bestImage(images []*image.Image) string {
	var (
		best     string
		bestArea uint64
	)
	for _, img := range images {
		if img == nil {
			continue
		}
		u := img.SecureURL
		if u == "" {
			u = img.URL
		}
		if u == "" {
			continue
		}
		area := img.Width * img.Height
		if best == "" || area > bestArea {
			best = u
			bestArea = area
		}
	}
	return best
}
