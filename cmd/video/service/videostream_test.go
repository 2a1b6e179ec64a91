package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamzone/pkg/errno"
	"streamzone/pkg/storage"
)

func TestResolveStreamExternalRedirects(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	video := f.external(t, alice.UserId, "linked")

	svc := NewVideoStreamService(f.ctx, f.videos, f.users, f.storage)

	decision, err := svc.Resolve(video.VideoId, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", decision.RedirectURL)
	assert.Empty(t, decision.FilePath)
}

func TestResolveStreamLocalFile(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	video := f.uploaded(t, alice.UserId, "clip", "public")

	svc := NewVideoStreamService(f.ctx, f.videos, f.users, f.storage)

	decision, err := svc.Resolve(video.VideoId, 0)
	require.NoError(t, err)
	assert.Empty(t, decision.RedirectURL)
	assert.Equal(t, f.storage.VideoPath("clip.mp4"), decision.FilePath)
}

func TestResolveStreamServeLocalDisabled(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	video := f.uploaded(t, alice.UserId, "clip", "public")

	base := t.TempDir()
	noLocal, err := storage.New(base+"/videos", base+"/images", false, 10, 5)
	require.NoError(t, err)

	svc := NewVideoStreamService(f.ctx, f.videos, f.users, noLocal)

	_, err = svc.Resolve(video.VideoId, 0)
	require.Error(t, err)
	assert.Equal(t, int64(errno.StreamingUnavailableCode), errno.ConvertErr(err).ErrCode)

	// external videos stay playable
	external := f.external(t, alice.UserId, "linked")
	decision, err := svc.Resolve(external.VideoId, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, decision.RedirectURL)
}

func TestResolveStreamPrivate(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	bob := f.user(t, "bob", "user")
	video := f.uploaded(t, alice.UserId, "secret", "private")

	svc := NewVideoStreamService(f.ctx, f.videos, f.users, f.storage)

	_, err := svc.Resolve(video.VideoId, bob.UserId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.ForbiddenErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.Resolve(video.VideoId, alice.UserId)
	require.NoError(t, err)
}

func TestResolveStreamNotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewVideoStreamService(f.ctx, f.videos, f.users, f.storage)
	_, err := svc.Resolve(99999, 0)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundErrCode), errno.ConvertErr(err).ErrCode)
}
