package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/unfurlkit/unfurl"
)

// Ensure LoggingExtractor implements unfurl.Extractor.
var _ unfurl.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with timing and field-count logging.
type LoggingExtractor struct {
	next   unfurl.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next unfurl.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error) {
	begin := time.Now()
	m, err := e.next.Extract(ctx, page)
	if err != nil {
		e.logger.Error("extract",
			"url", page.FinalURL,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}
	e.logger.Info("extract",
		"url", page.FinalURL,
		"fields", len(m.Fields),
		"duration", time.Since(begin),
	)
	return m, nil
}
