package unfurl_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unfurlkit/unfurl"
)

func TestMetadata_SetAndAccessors(t *testing.T) {
	t.Parallel()

	m := unfurl.NewMetadata("https://example.com/")
	m.Set(unfurl.FieldTitle, "A Title")
	m.Set(unfurl.FieldAuthor, "Jane Doe")
	m.SetList(unfurl.FieldFeeds, []string{"https://example.com/a.xml", "https://example.com/b.xml"})

	assert.Equal(t, "A Title", m.Title())
	assert.Equal(t, "Jane Doe", m.Author())
	assert.Equal(t, []string{"https://example.com/a.xml", "https://example.com/b.xml"}, m.Feeds())
	assert.Empty(t, m.Description())
}

func TestMetadata_Set_IgnoresEmptyValues(t *testing.T) {
	t.Parallel()

	m := unfurl.NewMetadata("https://example.com/")
	m.Set(unfurl.FieldTitle, "")
	m.SetList(unfurl.FieldFeeds, nil)

	assert.False(t, m.Has(unfurl.FieldTitle))
	assert.False(t, m.Has(unfurl.FieldFeeds))
}

func TestMetadata_Set_IgnoresReservedKeys(t *testing.T) {
	t.Parallel()

	m := unfurl.NewMetadata("https://example.com/")
	m.Set("url", "https://evil.example.com/")
	m.Set("extractedAt", "never")

	assert.False(t, m.Has("url"))
	assert.False(t, m.Has("extractedAt"))
	assert.Equal(t, "https://example.com/", m.URL)
}

func TestMetadata_SetIfAbsent(t *testing.T) {
	t.Parallel()

	m := unfurl.NewMetadata("https://example.com/")

	assert.True(t, m.SetIfAbsent(unfurl.FieldTitle, "first"))
	assert.False(t, m.SetIfAbsent(unfurl.FieldTitle, "second"))
	assert.Equal(t, "first", m.Title())
}

func TestMetadata_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("flat object with url and extractedAt", func(t *testing.T) {
		t.Parallel()

		m := unfurl.NewMetadata("https://example.com/page")
		m.ExtractedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m.Set(unfurl.FieldTitle, "A")
		m.Set("og:type", "article")
		m.SetList(unfurl.FieldFeeds, []string{"https://example.com/a.xml"})

		b, err := json.Marshal(m)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, "https://example.com/page", got["url"])
		assert.Equal(t, "2024-01-01T00:00:00.000Z", got["extractedAt"])
		assert.Equal(t, "A", got["title"])
		assert.Equal(t, "article", got["og:type"])
		assert.Equal(t, []any{"https://example.com/a.xml"}, got["feeds"])
	})

	t.Run("absent fields are omitted entirely", func(t *testing.T) {
		t.Parallel()

		m := unfurl.NewMetadata("https://example.com/")
		m.ExtractedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		b, err := json.Marshal(m)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Len(t, got, 2)
		assert.Contains(t, got, "url")
		assert.Contains(t, got, "extractedAt")
	})
}
