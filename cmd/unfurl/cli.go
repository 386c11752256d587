package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/unfurlkit/unfurl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service unfurl.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Indent    bool          `short:"i" help:"Pretty-print the JSON output"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `help:"Override the User-Agent header"`
	URL       string        `arg:"" required:"" help:"URL to extract metadata from"`
}

// ExtractCmd runs one extraction and prints the result as JSON.
type ExtractCmd struct {
	URL    string
	Indent bool
}

// Run executes the extraction.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.Unfurl(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("%s", unfurl.ErrorMessage(err))
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
