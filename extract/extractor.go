// Package extract implements the metadata extraction pipeline: prioritized
// rule chains per canonical field, the auxiliary tag sweep, URL resolution
// against the final fetched URL, and result assembly.
package extract

import (
	"context"
	"net/url"
	"time"

	"github.com/unfurlkit/unfurl"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements unfurl.Extractor at compile time.
var _ unfurl.Extractor = (*Extractor)(nil)

// Extractor turns a fetched page into a metadata record. It holds no
// per-request state: every invocation owns its own document tree and result.
type Extractor struct {
	parser  unfurl.Parser
	config  Config
	sources []unfurl.Source
	now     func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig replaces the default rule set.
func WithConfig(config Config) Option {
	return func(e *Extractor) {
		e.config = config
	}
}

// WithSources registers secondary extraction sources, consulted in order
// after the rule chains for any canonical field still absent.
func WithSources(sources ...unfurl.Source) Option {
	return func(e *Extractor) {
		e.sources = sources
	}
}

// WithClock overrides the extraction timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor over the given parsing backend.
func NewExtractor(parser unfurl.Parser, opts ...Option) *Extractor {
	e := &Extractor{
		parser: parser,
		config: DefaultConfig(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full post-fetch pipeline. Missing fields are never an
// error; only an unusable final URL or document tree fails.
func (e *Extractor) Extract(ctx context.Context, page *unfurl.Page) (*unfurl.Metadata, error) {
	base, err := url.Parse(page.FinalURL)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINTERNAL, "invalid final URL %q: %v", page.FinalURL, err)
	}

	doc, err := e.parser.Parse(page.HTML)
	if err != nil {
		return nil, err
	}

	// Rule chains and the tag sweep are independent read-only passes over
	// the same tree.
	var (
		ruleValues map[string]string
		col        Collection
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		ruleValues = e.config.apply(doc)
		return nil
	})
	g.Go(func() error {
		col = Collect(doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, unfurl.Errorf(unfurl.EINTERNAL, "extraction failed: %v", err)
	}

	// Sources are best-effort: one failing contributes nothing.
	var sourceValues []map[string]string
	for _, source := range e.sources {
		candidates, err := source.Extract(page.HTML, base)
		if err != nil || len(candidates) == 0 {
			continue
		}
		sourceValues = append(sourceValues, candidates)
	}

	m := assemble(base, ruleValues, sourceValues, col)
	m.ExtractedAt = e.now().UTC()
	return m, nil
}
