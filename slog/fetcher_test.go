package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unfurlkit/unfurl"
	"github.com/unfurlkit/unfurl/mock"
	unfslog "github.com/unfurlkit/unfurl/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*unfurl.Page, error) {
				return &unfurl.Page{FinalURL: url, HTML: "<html>content</html>"}, nil
			},
		}

		fetcher := unfslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.HTML)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*unfurl.Page, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := unfslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/page")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := unfslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))
		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
