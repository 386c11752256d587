package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/unfurlkit/unfurl/extract"
	"github.com/unfurlkit/unfurl/goquery"
	unfhttp "github.com/unfurlkit/unfurl/http"
	"github.com/unfurlkit/unfurl/opengraph"
	"github.com/unfurlkit/unfurl/readability"
	unfslog "github.com/unfurlkit/unfurl/slog"
	"github.com/unfurlkit/unfurl/trafilatura"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Addr    string        `default:":8080" help:"Listen address"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	RPS     float64       `default:"1" help:"Outbound requests per second per host"`
}

// Run wires the server and blocks until the listener fails.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unfurld"),
		kong.Description("HTTP server exposing web page metadata extraction"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fetcher := unfhttp.NewFetcher(unfhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	extractor := extract.NewExtractor(goquery.NewParser(),
		extract.WithSources(
			opengraph.NewSource(),
			readability.NewSource(),
			trafilatura.NewSource(),
		),
	)

	pipeline := &extract.Pipeline{
		Fetcher:   unfslog.NewLoggingFetcher(fetcher, logger),
		Extractor: unfslog.NewLoggingExtractor(extractor, logger),
	}

	server := unfhttp.NewServer(pipeline,
		unfhttp.WithLogger(logger),
		unfhttp.WithLimiter(unfhttp.NewHostLimiter(cli.RPS)),
	)

	httpServer := &http.Server{
		Addr:              cli.Addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening", "addr", cli.Addr)
	return httpServer.ListenAndServe()
}
