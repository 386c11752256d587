package extract_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unfurlkit/unfurl/extract"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	base, _ := url.Parse("https://example.com/articles/page")

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"absolute passes through unchanged", "https://cdn.example.net/img.png", "https://cdn.example.net/img.png"},
		{"absolute path", "/favicon.ico", "https://example.com/favicon.ico"},
		{"relative path", "img/photo.jpg", "https://example.com/articles/img/photo.jpg"},
		{"scheme-relative", "//static.example.com/app.css", "https://static.example.com/app.css"},
		{"empty dropped", "", ""},
		{"whitespace dropped", "   ", ""},
		{"data URI dropped", "data:image/png;base64,AAAA", ""},
		{"javascript dropped", "javascript:void(0)", ""},
		{"malformed dropped", "://missing-scheme", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.Resolve(base, tt.candidate))
		})
	}
}

func TestResolve_NilBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/a", extract.Resolve(nil, "https://example.com/a"))
	assert.Empty(t, extract.Resolve(nil, "/relative"))
}
