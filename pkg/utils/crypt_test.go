package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptRoundTrip(t *testing.T) {
	hash, err := Crypt("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, VerifyPassword("hunter22", hash))
	assert.False(t, VerifyPassword("hunter23", hash))
}

func TestRandomFilename(t *testing.T) {
	a := RandomFilename("video", "My Clip.MP4")
	b := RandomFilename("video", "My Clip.MP4")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "video-"))
	assert.True(t, strings.HasSuffix(a, ".mp4"))
}
