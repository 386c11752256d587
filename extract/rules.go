package extract

import (
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/unfurlkit/unfurl"
)

// ruleOrder fixes the evaluation order of canonical fields so extraction is
// deterministic for identical input.
var ruleOrder = []string{
	unfurl.FieldTitle,
	unfurl.FieldDescription,
	unfurl.FieldImage,
	unfurl.FieldLogo,
	unfurl.FieldAuthor,
	unfurl.FieldDate,
	unfurl.FieldPublisher,
}

// Config is the immutable rule set for an Extractor. It is assembled once at
// wire time and shared read-only across invocations.
type Config struct {
	// Rules maps a canonical field to its prioritized strategy chain.
	// The first strategy producing a non-empty value wins.
	Rules map[string][]unfurl.Strategy
}

// Image size thresholds for the inferred-image heuristic. An <img> with both
// dimensions declared qualifies at the lower bound; with only one declared it
// must clear the higher one.
const (
	minImageBothSides  = 100
	minImageSingleSide = 200
)

// DefaultConfig returns the standard extraction rule set: Open Graph first,
// Twitter Card second, then document-level fallbacks.
func DefaultConfig() Config {
	return Config{
		Rules: map[string][]unfurl.Strategy{
			unfurl.FieldTitle: {
				MetaProperty("og:title"),
				MetaName("twitter:title"),
				ElementText("title"),
				ElementText("h1"),
				JSONLDHeadline(),
			},
			unfurl.FieldDescription: {
				MetaProperty("og:description"),
				MetaName("twitter:description"),
				MetaName("description"),
			},
			unfurl.FieldImage: {
				MetaProperty("og:image"),
				MetaName("twitter:image"),
				JSONLDImage(),
				FirstLargeImage(minImageBothSides, minImageSingleSide),
			},
			unfurl.FieldLogo: {
				MetaProperty("og:logo"),
				JSONLDPublisherLogo(),
			},
			unfurl.FieldAuthor: {
				MetaName("author"),
				JSONLDAuthor(),
				MetaProperty("article:author"),
			},
			unfurl.FieldDate: {
				Parsable(MetaProperty("article:published_time")),
				Parsable(JSONLDDatePublished()),
				Parsable(MetaName("date")),
				Parsable(TimeElement()),
			},
			unfurl.FieldPublisher: {
				MetaProperty("og:site_name"),
				MetaName("publisher"),
				JSONLDPublisherName(),
			},
		},
	}
}

// apply runs every chain against the document and returns the winning value
// per field. Absence is a missing key.
func (c Config) apply(doc unfurl.Document) map[string]string {
	values := make(map[string]string)
	for _, field := range ruleOrder {
		for _, strategy := range c.Rules[field] {
			if v := strategy(doc); v != "" {
				values[field] = v
				break
			}
		}
	}
	return values
}

// MetaProperty returns the content of the first <meta property="..."> tag.
func MetaProperty(property string) unfurl.Strategy {
	return metaAttr("property", property)
}

// MetaName returns the content of the first <meta name="..."> tag.
func MetaName(name string) unfurl.Strategy {
	return metaAttr("name", name)
}

func metaAttr(attr, value string) unfurl.Strategy {
	selector := `meta[` + attr + `="` + value + `"]`
	return func(doc unfurl.Document) string {
		for _, el := range doc.Select(selector) {
			if content, ok := el.Attr("content"); ok && strings.TrimSpace(content) != "" {
				return strings.TrimSpace(content)
			}
		}
		return ""
	}
}

// ElementText returns the trimmed text of the first matching element.
func ElementText(selector string) unfurl.Strategy {
	return func(doc unfurl.Document) string {
		for _, el := range doc.Select(selector) {
			if text := strings.TrimSpace(el.Text()); text != "" {
				return text
			}
		}
		return ""
	}
}

// FirstLargeImage returns the src of the first <img> in the document body
// whose declared dimensions clear the thresholds. Images without declared
// dimensions are skipped: measuring would require a second fetch.
func FirstLargeImage(minBoth, minSingle int) unfurl.Strategy {
	return func(doc unfurl.Document) string {
		for _, el := range doc.Select("body img[src]") {
			src, ok := el.Attr("src")
			if !ok || strings.TrimSpace(src) == "" {
				continue
			}
			w := dimension(el, "width")
			h := dimension(el, "height")
			switch {
			case w > 0 && h > 0:
				if w >= minBoth && h >= minBoth {
					return strings.TrimSpace(src)
				}
			case w >= minSingle || h >= minSingle:
				return strings.TrimSpace(src)
			}
		}
		return ""
	}
}

func dimension(el unfurl.Element, attr string) int {
	raw, ok := el.Attr(attr)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// TimeElement returns the first date-like string found in visible metadata:
// a <time> element's datetime attribute, else its text.
func TimeElement() unfurl.Strategy {
	return func(doc unfurl.Document) string {
		for _, el := range doc.Select("time") {
			if dt, ok := el.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
				return strings.TrimSpace(dt)
			}
			if text := strings.TrimSpace(el.Text()); text != "" {
				return text
			}
		}
		return ""
	}
}

// Parsable filters a strategy's output through date parsing: values that do
// not parse as a date are treated as absent so the chain can keep looking.
func Parsable(next unfurl.Strategy) unfurl.Strategy {
	return func(doc unfurl.Document) string {
		v := next(doc)
		if v == "" {
			return ""
		}
		if _, err := dateparse.ParseAny(v); err != nil {
			return ""
		}
		return v
	}
}

// NormalizeDate reformats a date candidate as RFC 3339 UTC. Unparsable input
// comes back empty.
func NormalizeDate(candidate string) string {
	t, err := dateparse.ParseAny(strings.TrimSpace(candidate))
	if err != nil {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05Z07:00")
}
