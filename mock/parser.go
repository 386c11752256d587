package mock

import "github.com/unfurlkit/unfurl"

var _ unfurl.Parser = (*Parser)(nil)

// Parser is a mock implementation of unfurl.Parser.
type Parser struct {
	ParseFn func(html string) (unfurl.Document, error)
}

func (p *Parser) Parse(html string) (unfurl.Document, error) {
	return p.ParseFn(html)
}
