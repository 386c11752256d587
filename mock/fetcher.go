package mock

import (
	"context"

	"github.com/unfurlkit/unfurl"
)

var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unfurl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*unfurl.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*unfurl.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
