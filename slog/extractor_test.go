package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unfurlkit/unfurl"
	"github.com/unfurlkit/unfurl/mock"
	unfslog "github.com/unfurlkit/unfurl/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs field count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error) {
				m := unfurl.NewMetadata(page.FinalURL)
				m.Set(unfurl.FieldTitle, "A")
				m.Set(unfurl.FieldAuthor, "B")
				return m, nil
			},
		}

		extractor := unfslog.NewLoggingExtractor(inner, logger)
		m, err := extractor.Extract(context.Background(), &unfurl.Page{FinalURL: "https://example.com/"})

		require.NoError(t, err)
		assert.Equal(t, "A", m.Title())
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "fields=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error) {
				return nil, unfurl.Errorf(unfurl.EINTERNAL, "extraction failed")
			},
		}

		extractor := unfslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract(context.Background(), &unfurl.Page{FinalURL: "https://example.com/"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "extraction failed")
	})
}
