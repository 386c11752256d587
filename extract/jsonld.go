package extract

import (
	"encoding/json"
	"strings"

	"github.com/unfurlkit/unfurl"
)

// JSONLDHeadline returns the first headline declared in JSON-LD.
func JSONLDHeadline() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		if v, ok := obj["headline"].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	})
}

// JSONLDImage returns the first image URL declared in JSON-LD. Handles a
// bare URL string, an ImageObject, and a list of either.
func JSONLDImage() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		return urlOf(obj["image"])
	})
}

// JSONLDAuthor returns the first author name declared in JSON-LD
// structured data. Handles both string and object author forms.
func JSONLDAuthor() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		return nameOf(obj["author"])
	})
}

// JSONLDDatePublished returns the first datePublished declared in JSON-LD.
func JSONLDDatePublished() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		if v, ok := obj["datePublished"].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	})
}

// JSONLDPublisherName returns the publisher name declared in JSON-LD.
func JSONLDPublisherName() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		return nameOf(obj["publisher"])
	})
}

// JSONLDPublisherLogo returns the publisher logo URL declared in JSON-LD.
// Handles both a bare URL string and an ImageObject.
func JSONLDPublisherLogo() unfurl.Strategy {
	return jsonLDValue(func(obj map[string]any) string {
		pub, ok := obj["publisher"].(map[string]any)
		if !ok {
			return ""
		}
		switch logo := pub["logo"].(type) {
		case string:
			return strings.TrimSpace(logo)
		case map[string]any:
			if u, ok := logo["url"].(string); ok {
				return strings.TrimSpace(u)
			}
		}
		return ""
	})
}

// jsonLDValue builds a strategy that decodes every JSON-LD script in the
// document and returns the first non-empty value pick produces. Top-level
// arrays and @graph containers are flattened; malformed scripts are skipped.
func jsonLDValue(pick func(obj map[string]any) string) unfurl.Strategy {
	return func(doc unfurl.Document) string {
		for _, el := range doc.Select(`script[type="application/ld+json"]`) {
			raw := strings.TrimSpace(el.Text())
			if raw == "" {
				continue
			}
			var decoded any
			if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
				continue
			}
			for _, obj := range flattenJSONLD(decoded) {
				if v := pick(obj); v != "" {
					return v
				}
			}
		}
		return ""
	}
}

func flattenJSONLD(decoded any) []map[string]any {
	var objs []map[string]any
	switch v := decoded.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok {
					objs = append(objs, obj)
				}
			}
		}
		objs = append(objs, v)
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				objs = append(objs, obj)
			}
		}
	}
	return objs
}

// urlOf extracts a URL from a JSON-LD value that may be a string, an
// ImageObject, or a list of either.
func urlOf(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		if u, ok := val["url"].(string); ok {
			return strings.TrimSpace(u)
		}
	case []any:
		for _, item := range val {
			if u := urlOf(item); u != "" {
				return u
			}
		}
	}
	return ""
}

// nameOf extracts a name from a JSON-LD value that may be a string, an
// object with a name, or a list of either.
func nameOf(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		if name, ok := val["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	case []any:
		for _, item := range val {
			if name := nameOf(item); name != "" {
				return name
			}
		}
	}
	return ""
}
