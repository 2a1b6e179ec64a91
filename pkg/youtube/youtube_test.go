package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, IsValidURL("http://youtu.be/dQw4w9WgXcQ"))
	assert.True(t, IsValidURL("youtube.com/embed/dQw4w9WgXcQ"))

	assert.False(t, IsValidURL("https://vimeo.com/12345"))
	assert.False(t, IsValidURL("not a url"))
}

func TestExtractID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                        "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":           "dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ":               "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL1&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s":   "dQw4w9WgXcQ",
		"https://www.youtube.com/playlist?list=PL1":           "",
	}
	for url, want := range cases {
		assert.Equal(t, want, ExtractID(url), url)
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc123", EmbedURL("abc123"))
}
