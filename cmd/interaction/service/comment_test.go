package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamzone/pkg/errno"
)

func TestCreateComment(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	video := f.video(t, alice.UserId)

	svc := NewCreateCommentService(f.ctx, f.comments, f.videos, f.users, f.reactions, f.guard)

	view, err := svc.CreateComment(bob.UserId, video.VideoId, 0, "  first!  ")
	require.NoError(t, err)
	assert.Equal(t, "first!", view.Content)
	assert.Equal(t, "bob", view.Author.Username)
	assert.Equal(t, int64(0), view.ParentId)
	assert.False(t, view.IsEdited)

	// reply lands on the parent's video even if another id is passed
	reply, err := svc.CreateComment(alice.UserId, 99999, view.Id, "welcome")
	require.NoError(t, err)
	assert.Equal(t, video.VideoId, reply.VideoId)
	assert.Equal(t, view.Id, reply.ParentId)

	// replying to a reply is rejected
	_, err = svc.CreateComment(bob.UserId, video.VideoId, reply.Id, "nested")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	video := f.video(t, alice.UserId)

	svc := NewCreateCommentService(f.ctx, f.comments, f.videos, f.users, f.reactions, f.guard)

	_, err := svc.CreateComment(alice.UserId, video.VideoId, 0, "   ")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.CreateComment(alice.UserId, video.VideoId, 0, strings.Repeat("a", 1001))
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.CreateComment(alice.UserId, 99999, 0, "hello")
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.CreateComment(alice.UserId, video.VideoId, 99999, "hello")
	require.Error(t, err)
	assert.Equal(t, int64(errno.NotFoundErrCode), errno.ConvertErr(err).ErrCode)
}

func TestListThread(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	video := f.video(t, alice.UserId)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := f.comment(t, video.VideoId, alice.UserId, 0, "older", base)
	newer := f.comment(t, video.VideoId, bob.UserId, 0, "newer", base.Add(time.Hour))
	r1 := f.comment(t, video.VideoId, bob.UserId, older.CommentId, "reply one", base.Add(10*time.Minute))
	r2 := f.comment(t, video.VideoId, alice.UserId, older.CommentId, "reply two", base.Add(20*time.Minute))

	// bob likes the older comment
	require.NoError(t, f.reactions.ToggleCommentReaction(f.ctx, older.CommentId, bob.UserId, "like"))

	svc := NewListCommentsService(f.ctx, f.comments, f.videos, f.users, f.reactions)

	views, err := svc.ListThread(video.VideoId, bob.UserId, "")
	require.NoError(t, err)
	require.Len(t, views, 2)

	// newest first, replies oldest first
	assert.Equal(t, newer.CommentId, views[0].Id)
	assert.Equal(t, older.CommentId, views[1].Id)
	require.Len(t, views[1].Replies, 2)
	assert.Equal(t, r1.CommentId, views[1].Replies[0].Id)
	assert.Equal(t, r2.CommentId, views[1].Replies[1].Id)
	assert.Equal(t, int64(2), views[1].Stats.RepliesCount)

	assert.Equal(t, "alice", views[1].Author.Username)
	assert.Equal(t, int64(1), views[1].Stats.LikesCount)
	assert.True(t, views[1].IsLiked)

	// anonymous viewers never see reaction membership
	anon, err := svc.ListThread(video.VideoId, 0, "")
	require.NoError(t, err)
	assert.False(t, anon[1].IsLiked)
	assert.Equal(t, int64(1), anon[1].Stats.LikesCount)
}

func TestUpdateComment(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	video := f.video(t, alice.UserId)
	comment := f.comment(t, video.VideoId, alice.UserId, 0, "original", time.Now())

	svc := NewUpdateCommentService(f.ctx, f.comments, f.users, f.reactions)

	view, err := svc.UpdateComment(comment.CommentId, alice.UserId, " fixed ")
	require.NoError(t, err)
	assert.Equal(t, "fixed", view.Content)
	assert.True(t, view.IsEdited)
	require.NotNil(t, view.EditedAt)

	stored, err := f.comments.FindByID(f.ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, "fixed", stored.Content)
	assert.True(t, stored.IsEdited)

	_, err = svc.UpdateComment(comment.CommentId, bob.UserId, "hijack")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ForbiddenErrCode), errno.ConvertErr(err).ErrCode)
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	video := f.video(t, alice.UserId)

	parent := f.comment(t, video.VideoId, alice.UserId, 0, "parent", time.Now())
	reply := f.comment(t, video.VideoId, bob.UserId, parent.CommentId, "reply", time.Now())
	require.NoError(t, f.reactions.ToggleCommentReaction(f.ctx, reply.CommentId, alice.UserId, "like"))

	svc := NewDeleteCommentService(f.ctx, f.comments, f.users)

	// a stranger cannot delete
	_, err := f.users.FindByID(f.ctx, bob.UserId)
	require.NoError(t, err)
	err = svc.DeleteComment(parent.CommentId, bob.UserId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.ForbiddenErrCode), errno.ConvertErr(err).ErrCode)

	require.NoError(t, svc.DeleteComment(parent.CommentId, alice.UserId))

	gone, err := f.comments.FindByID(f.ctx, parent.CommentId)
	require.NoError(t, err)
	assert.Nil(t, gone)
	goneReply, err := f.comments.FindByID(f.ctx, reply.CommentId)
	require.NoError(t, err)
	assert.Nil(t, goneReply)

	counts, err := f.reactions.CountCommentReactions(f.ctx, reply.CommentId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Likes)
}

func TestDeleteCommentByAdmin(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	root := f.admin(t, "root")
	video := f.video(t, alice.UserId)
	comment := f.comment(t, video.VideoId, alice.UserId, 0, "spam", time.Now())

	svc := NewDeleteCommentService(f.ctx, f.comments, f.users)
	require.NoError(t, svc.DeleteComment(comment.CommentId, root.UserId))

	gone, err := f.comments.FindByID(f.ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
