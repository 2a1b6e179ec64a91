package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamzone/cmd/model"
	"streamzone/pkg/errno"
)

func TestDeleteVideoCascades(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	bob := f.user(t, "bob", "user")
	video := f.uploaded(t, alice.UserId, "clip", "public")

	require.NoError(t, os.WriteFile(f.storage.VideoPath("clip.mp4"), []byte("bytes"), 0o644))

	comment := &model.Comment{VideoId: video.VideoId, UserId: bob.UserId, Content: "bye", CreatedAt: time.Now()}
	require.NoError(t, f.comments.Create(f.ctx, comment))
	require.NoError(t, f.reactions.ToggleVideoReaction(f.ctx, video.VideoId, bob.UserId, "like"))
	require.NoError(t, f.history.RecordView(f.ctx, bob.UserId, video.VideoId))

	svc := NewVideoDeleteService(f.ctx, f.videos, f.users, f.history, f.comments, f.reactions, f.storage)
	require.NoError(t, svc.DeleteVideo(video.VideoId, alice.UserId))

	gone, err := f.videos.FindByID(f.ctx, video.VideoId)
	require.NoError(t, err)
	assert.Nil(t, gone)

	goneComment, err := f.comments.FindByID(f.ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Nil(t, goneComment)

	counts, err := f.reactions.CountVideoReactions(f.ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Likes)

	_, err = os.Stat(f.storage.VideoPath("clip.mp4"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteVideoPermissions(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	bob := f.user(t, "bob", "user")
	root := f.user(t, "root", "admin")

	video := f.uploaded(t, alice.UserId, "clip", "public")
	svc := NewVideoDeleteService(f.ctx, f.videos, f.users, f.history, f.comments, f.reactions, f.storage)

	err := svc.DeleteVideo(video.VideoId, bob.UserId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.ForbiddenErrCode), errno.ConvertErr(err).ErrCode)

	require.NoError(t, svc.DeleteVideo(video.VideoId, root.UserId))

	err = svc.DeleteVideo(video.VideoId, alice.UserId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundErrCode), errno.ConvertErr(err).ErrCode)
}
