package unfurl

import (
	"encoding/json"
	"time"
)

// Canonical field names. Each has dedicated extraction logic; everything
// else in a result is a raw tag carried through verbatim.
const (
	FieldURL         = "url"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldLogo        = "logo"
	FieldFavicon     = "favicon"
	FieldAuthor      = "author"
	FieldPublisher   = "publisher"
	FieldDate        = "date"
	FieldLanguage    = "language"
	FieldCanonical   = "canonical"
	FieldFeeds       = "feeds"
)

// extractedAtLayout renders timestamps as RFC 3339 with millisecond
// precision; in UTC the offset collapses to "Z".
const extractedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Field is a single metadata value: either a scalar string or an ordered
// list of strings. Exactly one of the two is set.
type Field struct {
	Value string
	List  []string
}

// String returns a scalar field.
func String(v string) Field {
	return Field{Value: v}
}

// List returns an ordered list field.
func List(vs ...string) Field {
	return Field{List: vs}
}

// IsList reports whether the field holds an ordered list.
func (f Field) IsList() bool {
	return f.List != nil
}

// MarshalJSON encodes a scalar as a JSON string and a list as a JSON array.
func (f Field) MarshalJSON() ([]byte, error) {
	if f.IsList() {
		return json.Marshal(f.List)
	}
	return json.Marshal(f.Value)
}

// Metadata is the result of one extraction: the final fetched URL, the
// completion timestamp, and a flat mapping of field names to values.
// Canonical fields share the mapping with raw tag keys; the typed accessors
// below cover the canonical ones.
type Metadata struct {
	// URL is the final URL after redirects. Always present.
	URL string

	// ExtractedAt is stamped once, when extraction completes.
	ExtractedAt time.Time

	// Fields holds every extracted field keyed by canonical name or raw
	// tag identifier. The reserved keys "url" and "extractedAt" never
	// appear here.
	Fields map[string]Field
}

// NewMetadata returns an empty result for the given final URL.
func NewMetadata(finalURL string) *Metadata {
	return &Metadata{
		URL:    finalURL,
		Fields: make(map[string]Field),
	}
}

// Set stores a scalar value. Empty values and the reserved keys are ignored:
// absence is encoded as a missing key, never an empty string.
func (m *Metadata) Set(key, value string) {
	if key == "" || value == "" || key == FieldURL || key == "extractedAt" {
		return
	}
	m.Fields[key] = String(value)
}

// SetIfAbsent stores a scalar value only when the key is not yet populated.
// It reports whether the value was stored.
func (m *Metadata) SetIfAbsent(key, value string) bool {
	if m.Has(key) {
		return false
	}
	before := len(m.Fields)
	m.Set(key, value)
	return len(m.Fields) > before
}

// SetList stores an ordered list value. Empty lists are ignored.
func (m *Metadata) SetList(key string, values []string) {
	if key == "" || len(values) == 0 {
		return
	}
	m.Fields[key] = List(values...)
}

// Get returns the scalar value for a key.
func (m *Metadata) Get(key string) (string, bool) {
	f, ok := m.Fields[key]
	if !ok || f.IsList() {
		return "", false
	}
	return f.Value, true
}

// Has reports whether a key is populated.
func (m *Metadata) Has(key string) bool {
	_, ok := m.Fields[key]
	return ok
}

func (m *Metadata) scalar(key string) string {
	v, _ := m.Get(key)
	return v
}

// Title returns the extracted page title, if any.
func (m *Metadata) Title() string { return m.scalar(FieldTitle) }

// Description returns the extracted description, if any.
func (m *Metadata) Description() string { return m.scalar(FieldDescription) }

// Image returns the canonical image URL, if any. Always absolute.
func (m *Metadata) Image() string { return m.scalar(FieldImage) }

// Logo returns the publisher logo URL, if any. Always absolute.
func (m *Metadata) Logo() string { return m.scalar(FieldLogo) }

// Favicon returns the favicon URL, if any. Always absolute.
func (m *Metadata) Favicon() string { return m.scalar(FieldFavicon) }

// Author returns the author name, if any.
func (m *Metadata) Author() string { return m.scalar(FieldAuthor) }

// Publisher returns the publisher or site name, if any.
func (m *Metadata) Publisher() string { return m.scalar(FieldPublisher) }

// Date returns the publication date in RFC 3339 form, if any.
func (m *Metadata) Date() string { return m.scalar(FieldDate) }

// Language returns the page language, if any.
func (m *Metadata) Language() string { return m.scalar(FieldLanguage) }

// Canonical returns the canonical link href as declared by the page, if any.
func (m *Metadata) Canonical() string { return m.scalar(FieldCanonical) }

// Feeds returns the syndication feed URLs in document order. All absolute.
func (m *Metadata) Feeds() []string {
	f, ok := m.Fields[FieldFeeds]
	if !ok {
		return nil
	}
	return f.List
}

// MarshalJSON renders the result as one flat JSON object: every field under
// its own key plus "url" and "extractedAt".
func (m *Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Fields)+2)
	for k, f := range m.Fields {
		if f.IsList() {
			out[k] = f.List
		} else {
			out[k] = f.Value
		}
	}
	out[FieldURL] = m.URL
	out["extractedAt"] = m.ExtractedAt.UTC().Format(extractedAtLayout)
	return json.Marshal(out)
}
