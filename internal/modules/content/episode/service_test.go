package episode

import (
	"testing"

	"github.com/roar-media/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmbedURL(t *testing.T) {
	t.Run("iframe snippet", func(t *testing.T) {
		embed := `<iframe style="border-radius:12px" src="https://open.spotify.com/embed/episode/abc123?utm_source=generator" width="100%" height="352"></iframe>`
		url, err := extractEmbedURL(embed)
		require.NoError(t, err)
		assert.Equal(t, "https://open.spotify.com/embed/episode/abc123?utm_source=generator", url)
	})

	t.Run("bare url", func(t *testing.T) {
		url, err := extractEmbedURL("  https://open.spotify.com/episode/abc123  ")
		require.NoError(t, err)
		assert.Equal(t, "https://open.spotify.com/episode/abc123", url)
	})

	t.Run("no url", func(t *testing.T) {
		_, err := extractEmbedURL("<p>not an embed</p>")
		assert.ErrorIs(t, err, errNoEmbedURL)
	})
}

func TestSplitGuests(t *testing.T) {
	assert.Equal(t, models.StringArray{"Ada", "Grace"}, splitGuests("Ada, Grace"))
	assert.Equal(t, models.StringArray{"Solo"}, splitGuests("  Solo  "))
	assert.Empty(t, splitGuests(" , , "))
	assert.Empty(t, splitGuests(""))
}
