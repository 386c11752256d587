// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/unfurlkit/unfurl"
)

// Ensure LoggingFetcher implements unfurl.Fetcher.
var _ unfurl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch timing and size logging.
type LoggingFetcher struct {
	next   unfurl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next unfurl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*unfurl.Page, error) {
	begin := time.Now()
	page, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"final_url", page.FinalURL,
		"bytes", len(page.HTML),
		"duration", time.Since(begin),
	)
	return page, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
