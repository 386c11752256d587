package mock

import (
	"context"

	"github.com/unfurlkit/unfurl"
)

var _ unfurl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unfurl.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error)
}

func (e *Extractor) Extract(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error) {
	return e.ExtractFn(ctx, page)
}
