package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamzone/pkg/errno"
)

func multipartHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestUploadVideo(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")

	svc := NewVideoUploadService(f.ctx, f.videos, f.storage)
	fh := multipartHeader(t, "video", "holiday.mp4", []byte("fake video bytes"))

	video, err := svc.Upload(alice.UserId, fh, VideoParams{
		Title: "Holiday",
		Tags:  []string{" beach ", "", "sun"},
	})
	require.NoError(t, err)
	assert.Equal(t, "uploaded", video.VideoType)
	assert.Equal(t, "holiday.mp4", video.OriginalName)
	assert.Equal(t, "Other", video.Category)
	assert.Equal(t, "public", video.Visibility)
	assert.Equal(t, "beach,sun", video.Tags)
	assert.Equal(t, StreamURL(video.VideoId), video.VideoUrl)

	data, err := os.ReadFile(f.storage.VideoPath(video.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake video bytes"), data)
}

func TestUploadValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	svc := NewVideoUploadService(f.ctx, f.videos, f.storage)

	cases := []VideoParams{
		{Title: ""},
		{Title: strings.Repeat("t", 101)},
		{Title: "ok", Category: "Cooking"},
		{Title: "ok", Visibility: "secret"},
	}
	for _, params := range cases {
		fh := multipartHeader(t, "video", "clip.mp4", []byte("x"))
		_, err := svc.Upload(alice.UserId, fh, params)
		require.Error(t, err)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	}

	// extension allow-list is enforced by storage
	fh := multipartHeader(t, "video", "malware.exe", []byte("x"))
	_, err := svc.Upload(alice.UserId, fh, VideoParams{Title: "ok"})
	require.Error(t, err)
}

func TestAddLinkValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	svc := NewVideoLinkService(f.ctx, f.videos)

	_, err := svc.AddLink(alice.UserId, "https://vimeo.com/12345", VideoParams{})
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	// an already linked id is rejected before any metadata lookup
	f.external(t, alice.UserId, "existing")
	_, err = svc.AddLink(alice.UserId, "https://youtu.be/dQw4w9WgXcQ", VideoParams{Title: "again"})
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
