package extract

import (
	"strings"

	"github.com/unfurlkit/unfurl"
)

// Collection is the output of the auxiliary tag sweep: everything gathered
// verbatim, without semantic interpretation. URL values are still raw.
type Collection struct {
	// Meta holds every collected meta tag keyed by its own property or
	// name. Duplicate keys are last-write-wins in document order.
	Meta map[string]string

	// Canonical is the raw href of <link rel="canonical">, if present.
	Canonical string

	// Favicon is the raw href of the highest-priority icon link.
	Favicon string

	// Language is the page language from <html lang>, else the
	// content-language http-equiv.
	Language string

	// Feeds holds every RSS/Atom link href in document order. Duplicates
	// are kept as declared.
	Feeds []string
}

// faviconSelectors in priority order. Only the first selector with a match
// contributes.
var faviconSelectors = []string{
	`link[rel="icon"]`,
	`link[rel="shortcut icon"]`,
	`link[rel="apple-touch-icon"]`,
}

// Collect sweeps the document in a single read-only pass.
func Collect(doc unfurl.Document) Collection {
	col := Collection{Meta: make(map[string]string)}

	for _, el := range doc.Select("meta") {
		property, _ := el.Attr("property")
		name, _ := el.Attr("name")
		content, _ := el.Attr("content")
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		switch {
		case strings.HasPrefix(property, "og:"):
			col.Meta[property] = content
		case strings.HasPrefix(name, "twitter:"):
			col.Meta[name] = content
		case name != "":
			col.Meta[name] = content
		}
	}

	if els := doc.Select(`link[rel="canonical"]`); len(els) > 0 {
		if href, ok := els[0].Attr("href"); ok {
			col.Canonical = strings.TrimSpace(href)
		}
	}

	for _, selector := range faviconSelectors {
		for _, el := range doc.Select(selector) {
			if href, ok := el.Attr("href"); ok && strings.TrimSpace(href) != "" {
				col.Favicon = strings.TrimSpace(href)
				break
			}
		}
		if col.Favicon != "" {
			break
		}
	}

	if els := doc.Select("html"); len(els) > 0 {
		if lang, ok := els[0].Attr("lang"); ok {
			col.Language = strings.TrimSpace(lang)
		}
	}
	if col.Language == "" {
		if els := doc.Select(`meta[http-equiv="content-language"]`); len(els) > 0 {
			if content, ok := els[0].Attr("content"); ok {
				col.Language = strings.TrimSpace(content)
			}
		}
	}

	for _, el := range doc.Select(`link[type="application/rss+xml"], link[type="application/atom+xml"]`) {
		if href, ok := el.Attr("href"); ok && strings.TrimSpace(href) != "" {
			col.Feeds = append(col.Feeds, strings.TrimSpace(href))
		}
	}

	return col
}
