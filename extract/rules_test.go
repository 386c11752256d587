package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unfurlkit/unfurl"
	"github.com/unfurlkit/unfurl/extract"
	"github.com/unfurlkit/unfurl/goquery"
)

func parse(t *testing.T, html string) unfurl.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

func TestMetaProperty(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<head><meta property="og:title" content="A"><title>B</title></head>`)

	assert.Equal(t, "A", extract.MetaProperty("og:title")(doc))
	assert.Empty(t, extract.MetaProperty("og:description")(doc))
}

func TestMetaName(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<head><meta name="description" content=" trimmed "></head>`)

	assert.Equal(t, "trimmed", extract.MetaName("description")(doc))
}

func TestElementText(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><h1>  </h1><h1>Heading</h1></body>`)
		assert.Equal(t, "Heading", extract.ElementText("h1")(doc))
	})

	t.Run("absent element yields empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>text</p></body>`)
		assert.Empty(t, extract.ElementText("h1")(doc))
	})
}

func TestFirstLargeImage(t *testing.T) {
	t.Parallel()

	t.Run("skips small and undeclared images", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
			<img src="/tracking.gif" width="1" height="1">
			<img src="/unknown.png">
			<img src="/hero.jpg" width="640" height="480">
		</body>`)

		assert.Equal(t, "/hero.jpg", extract.FirstLargeImage(100, 200)(doc))
	})

	t.Run("single declared dimension must clear higher bound", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
			<img src="/narrow.png" width="150">
			<img src="/wide.png" width="300">
		</body>`)

		assert.Equal(t, "/wide.png", extract.FirstLargeImage(100, 200)(doc))
	})

	t.Run("no qualifying image yields empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><img src="/icon.png" width="16" height="16"></body>`)
		assert.Empty(t, extract.FirstLargeImage(100, 200)(doc))
	})
}

func TestTimeElement(t *testing.T) {
	t.Parallel()

	t.Run("prefers datetime attribute", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><time datetime="2024-03-01T10:00:00Z">March 1st</time></body>`)
		assert.Equal(t, "2024-03-01T10:00:00Z", extract.TimeElement()(doc))
	})

	t.Run("falls back to element text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><time>2024-03-01</time></body>`)
		assert.Equal(t, "2024-03-01", extract.TimeElement()(doc))
	})
}

func TestParsable(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<head><meta name="date" content="next Tuesday-ish"></head>`)

	assert.Empty(t, extract.Parsable(extract.MetaName("date"))(doc))

	doc = parse(t, `<head><meta name="date" content="2024-03-01"></head>`)
	assert.Equal(t, "2024-03-01", extract.Parsable(extract.MetaName("date"))(doc))
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03-01T10:00:00Z", extract.NormalizeDate("2024-03-01T10:00:00Z"))
	assert.Equal(t, "2024-03-01T00:00:00Z", extract.NormalizeDate("2024-03-01"))
	assert.Empty(t, extract.NormalizeDate("not a date"))
}

func TestJSONLDStrategies(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<head><script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@type": "NewsArticle",
		"headline": "Big News",
		"author": {"@type": "Person", "name": "Jane Doe"},
		"datePublished": "2024-03-01T10:00:00Z",
		"publisher": {
			"@type": "Organization",
			"name": "Example News",
			"logo": {"@type": "ImageObject", "url": "https://example.com/logo.png"}
		}
	}
	</script></head>`)

	assert.Equal(t, "Big News", extract.JSONLDHeadline()(doc))
	assert.Equal(t, "Jane Doe", extract.JSONLDAuthor()(doc))
	assert.Equal(t, "2024-03-01T10:00:00Z", extract.JSONLDDatePublished()(doc))
	assert.Equal(t, "Example News", extract.JSONLDPublisherName()(doc))
	assert.Equal(t, "https://example.com/logo.png", extract.JSONLDPublisherLogo()(doc))
}

func TestJSONLDStrategies_Variants(t *testing.T) {
	t.Parallel()

	t.Run("author as string", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><script type="application/ld+json">{"author": "Jane Doe"}</script></head>`)
		assert.Equal(t, "Jane Doe", extract.JSONLDAuthor()(doc))
	})

	t.Run("author list", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><script type="application/ld+json">{"author": [{"name": "First"}, {"name": "Second"}]}</script></head>`)
		assert.Equal(t, "First", extract.JSONLDAuthor()(doc))
	})

	t.Run("graph container", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><script type="application/ld+json">{"@graph": [{"datePublished": "2024-01-15"}]}</script></head>`)
		assert.Equal(t, "2024-01-15", extract.JSONLDDatePublished()(doc))
	})

	t.Run("image as object list", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><script type="application/ld+json">{"image": [{"url": "https://example.com/a.png"}]}</script></head>`)
		assert.Equal(t, "https://example.com/a.png", extract.JSONLDImage()(doc))
	})

	t.Run("malformed script skipped", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
			<script type="application/ld+json">{not json</script>
			<script type="application/ld+json">{"author": "Jane"}</script>
		</head>`)
		assert.Equal(t, "Jane", extract.JSONLDAuthor()(doc))
	})
}
