package unfurl

import "context"

// Fetcher retrieves documents from URLs with a single best-effort GET.
type Fetcher interface {
	// Fetch performs one GET request, follows redirects transparently,
	// and returns the post-redirect URL together with the raw body.
	// A non-2xx response or transport failure yields EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
