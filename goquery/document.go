// Package goquery provides a goquery-backed implementation of the
// unfurl.Parser and unfurl.Document capability interfaces.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/unfurlkit/unfurl"
)

// Ensure interfaces are implemented at compile time.
var (
	_ unfurl.Parser   = (*Parser)(nil)
	_ unfurl.Document = (*Document)(nil)
)

// Parser parses raw HTML into a queryable document tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML. goquery tolerates malformed markup,
// so parse failures are limited to reader-level faults.
func (p *Parser) Parse(html string) (unfurl.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Select returns all elements matching the CSS selector in document order.
func (d *Document) Select(selector string) []unfurl.Element {
	var elements []unfurl.Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, &element{sel: sel})
	})
	return elements
}

type element struct {
	sel *goquery.Selection
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *element) Text() string {
	return e.sel.Text()
}
