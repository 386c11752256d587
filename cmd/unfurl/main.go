package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/unfurlkit/unfurl/extract"
	"github.com/unfurlkit/unfurl/goquery"
	unfhttp "github.com/unfurlkit/unfurl/http"
	"github.com/unfurlkit/unfurl/opengraph"
	"github.com/unfurlkit/unfurl/readability"
	"github.com/unfurlkit/unfurl/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unfurl"),
		kong.Description("Extract structured metadata from a web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	fetcherOpts := []unfhttp.Option{unfhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, unfhttp.WithUserAgent(cli.UserAgent))
	}
	fetcher := unfhttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()

	extractor := extract.NewExtractor(goquery.NewParser(),
		extract.WithSources(
			opengraph.NewSource(),
			readability.NewSource(),
			trafilatura.NewSource(),
		),
	)

	pipeline := &extract.Pipeline{
		Fetcher:   fetcher,
		Extractor: extractor,
	}

	cmd := &ExtractCmd{
		URL:    cli.URL,
		Indent: cli.Indent,
	}

	return cmd.Run(&Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Service: pipeline,
	})
}
