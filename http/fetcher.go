// Package http provides the HTTP-based implementation of unfurl.Fetcher and
// the JSON API server exposing the extraction pipeline.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unfurlkit/unfurl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds a single fetch so a hanging origin cannot
// stall the pipeline.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a realistic browser agent string; servers may reject
// or degrade requests with bot-like agents.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20 // 10MB

// Ensure Fetcher implements unfurl.Fetcher at compile time.
var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents with a single GET per URL. Redirects are
// followed transparently by the underlying transport; the post-redirect URL
// is reported as the page's final URL. No retries: one attempt, fail fast.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes caps the response body size.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs one GET request and returns the final URL and raw body.
// Any transport failure, timeout or non-2xx status maps to EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*unfurl.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "invalid request for %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EUNAVAILABLE, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, unfurl.Errorf(unfurl.EUNAVAILABLE, "HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !isHTMLContentType(contentType) {
		return nil, unfurl.Errorf(unfurl.EUNAVAILABLE, "unsupported content type %q", contentType)
	}

	body := io.Reader(io.LimitReader(resp.Body, f.maxBodyBytes))
	if decoded, err := charset.NewReader(body, contentType); err == nil {
		body = decoded
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EUNAVAILABLE, "read %s: %v", rawURL, err)
	}

	return &unfurl.Page{
		FinalURL: resp.Request.URL.String(),
		HTML:     string(raw),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") ||
		strings.Contains(ct, "application/xhtml+xml") ||
		strings.Contains(ct, "text/plain")
}
