package mock

import (
	"net/url"

	"github.com/unfurlkit/unfurl"
)

var _ unfurl.Source = (*Source)(nil)

// Source is a mock implementation of unfurl.Source.
type Source struct {
	NameFn    func() string
	ExtractFn func(html string, base *url.URL) (map[string]string, error)
}

func (s *Source) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *Source) Extract(html string, base *url.URL) (map[string]string, error) {
	return s.ExtractFn(html, base)
}
