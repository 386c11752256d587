package extract

import (
	"context"

	"github.com/unfurlkit/unfurl"
)

// Ensure Pipeline implements unfurl.Service at compile time.
var _ unfurl.Service = (*Pipeline)(nil)

// Pipeline is the full request flow: validate the URL, fetch the document
// once, extract metadata. One invocation per request; no state is shared.
type Pipeline struct {
	Fetcher   unfurl.Fetcher
	Extractor unfurl.Extractor
}

// Unfurl runs the pipeline for one URL. Invalid input fails with EINVALID
// before any network call.
func (p *Pipeline) Unfurl(ctx context.Context, rawURL string) (*unfurl.Metadata, error) {
	if err := unfurl.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	page, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return p.Extractor.Extract(ctx, page)
}
