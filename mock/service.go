package mock

import (
	"context"

	"github.com/unfurlkit/unfurl"
)

var _ unfurl.Service = (*Service)(nil)

// Service is a mock implementation of unfurl.Service.
type Service struct {
	UnfurlFn func(ctx context.Context, url string) (*unfurl.Metadata, error)
}

func (s *Service) Unfurl(ctx context.Context, url string) (*unfurl.Metadata, error) {
	return s.UnfurlFn(ctx, url)
}
