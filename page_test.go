package unfurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unfurlkit/unfurl"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute URLs", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"https://example.com",
			"http://example.com/path?q=1",
			"https://example.com:8443/page#frag",
		} {
			assert.NoError(t, unfurl.ValidateURL(raw), raw)
		}
	})

	t.Run("rejects malformed and relative input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"",
			"   ",
			"not a url",
			"example.com",
			"/relative/path",
			"//example.com/scheme-relative",
			"mailto:",
		} {
			err := unfurl.ValidateURL(raw)
			require.Error(t, err, raw)
			assert.Equal(t, unfurl.EINVALID, unfurl.ErrorCode(err), raw)
		}
	})
}
