package extract

import (
	"net/url"

	"github.com/unfurlkit/unfurl"
)

// claims maps a canonical field to the raw tag keys that feed it, in
// fallback priority order. Claimed keys never appear standalone in a result:
// they either informed the canonical field or stood in for it.
var claims = map[string][]string{
	unfurl.FieldTitle:       {"og:title", "twitter:title"},
	unfurl.FieldDescription: {"og:description", "twitter:description", "description"},
	unfurl.FieldImage:       {"og:image", "twitter:image"},
	unfurl.FieldLogo:        {"og:logo"},
	unfurl.FieldAuthor:      {"author"},
	unfurl.FieldDate:        {"date"},
	unfurl.FieldPublisher:   {"og:site_name", "publisher"},
}

// assemble merges rule output, source candidates and the auxiliary sweep
// into one result. Precedence per field: rule-based value, then sources in
// registration order, then claimed raw tags. Remaining unclaimed tags pass
// through verbatim. URL-valued fields are resolved against base; candidates
// that cannot be resolved are dropped.
func assemble(base *url.URL, rules map[string]string, sources []map[string]string, col Collection) *unfurl.Metadata {
	m := unfurl.NewMetadata(base.String())

	consumed := make(map[string]bool)
	for _, keys := range claims {
		for _, key := range keys {
			consumed[key] = true
		}
	}

	for _, field := range ruleOrder {
		v := rules[field]
		if v == "" {
			for _, candidates := range sources {
				if candidates[field] != "" {
					v = candidates[field]
					break
				}
			}
		}
		if v == "" {
			for _, key := range claims[field] {
				if tag := col.Meta[key]; tag != "" {
					v = tag
					break
				}
			}
		}
		if v == "" {
			continue
		}
		switch field {
		case unfurl.FieldImage, unfurl.FieldLogo:
			v = Resolve(base, v)
		case unfurl.FieldDate:
			v = NormalizeDate(v)
		}
		m.Set(field, v)
	}

	favicon := col.Favicon
	if favicon == "" {
		for _, candidates := range sources {
			if candidates[unfurl.FieldFavicon] != "" {
				favicon = candidates[unfurl.FieldFavicon]
				break
			}
		}
	}

	// The site icon is the logo fallback candidate, not its definition.
	if !m.Has(unfurl.FieldLogo) && favicon != "" {
		m.Set(unfurl.FieldLogo, Resolve(base, favicon))
	}

	// Canonical stays as declared by the page; only fetchable references
	// (favicon, feeds, image, logo) are resolved.
	m.Set(unfurl.FieldCanonical, col.Canonical)
	m.Set(unfurl.FieldFavicon, Resolve(base, favicon))

	m.Set(unfurl.FieldLanguage, col.Language)
	if !m.Has(unfurl.FieldLanguage) {
		for _, candidates := range sources {
			if candidates[unfurl.FieldLanguage] != "" {
				m.Set(unfurl.FieldLanguage, candidates[unfurl.FieldLanguage])
				break
			}
		}
	}

	var feeds []string
	for _, href := range col.Feeds {
		if resolved := Resolve(base, href); resolved != "" {
			feeds = append(feeds, resolved)
		}
	}
	m.SetList(unfurl.FieldFeeds, feeds)

	for key, value := range col.Meta {
		if consumed[key] {
			continue
		}
		m.SetIfAbsent(key, value)
	}

	return m
}
