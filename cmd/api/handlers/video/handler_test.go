package video

import (
	"bytes"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkParamBinding(t *testing.T) {
	body := `{"youtubeUrl":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","title":"t","tags":["music"]}`
	c := ut.CreateUtRequestContext("POST", "/api/videos/youtube",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"})

	var req LinkParam
	require.NoError(t, c.BindAndValidate(&req))
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", req.URL)
	assert.Equal(t, "t", req.Title)
	assert.Equal(t, []string{"music"}, req.Tags)
}

func TestLinkParamRequiresYoutubeUrl(t *testing.T) {
	body := `{"title":"t"}`
	c := ut.CreateUtRequestContext("POST", "/api/videos/youtube",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"})

	var req LinkParam
	assert.Error(t, c.BindAndValidate(&req))
}
