package service

import (
	"context"

	"streamzone/cmd/interaction/dal/db"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/errno"
)

type ListCommentsService struct {
	ctx      context.Context
	comments *db.CommentRepo
	videos   *videodb.VideoRepo
	builder  commentViewBuilder
}

func NewListCommentsService(ctx context.Context, comments *db.CommentRepo, videos *videodb.VideoRepo,
	users *userdb.UserRepo, reactions *db.ReactionRepo) *ListCommentsService {
	return &ListCommentsService{
		ctx:      ctx,
		comments: comments,
		videos:   videos,
		builder:  commentViewBuilder{users: users, reactions: reactions},
	}
}

// ListThread returns the video's comment thread: top-level comments in the
// requested order, each carrying its replies oldest first.
func (s *ListCommentsService) ListThread(videoID, viewerID int64, sortOrder string) ([]*CommentView, error) {
	video, err := s.videos.FindByID(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	topLevel, err := s.comments.ListTopLevel(s.ctx, videoID, sortOrder)
	if err != nil {
		return nil, err
	}
	parentIDs := make([]int64, 0, len(topLevel))
	for _, c := range topLevel {
		parentIDs = append(parentIDs, c.CommentId)
	}
	replies, err := s.comments.ListReplies(s.ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	views, err := s.builder.build(s.ctx, topLevel, viewerID)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		children := replies[view.Id]
		if len(children) == 0 {
			continue
		}
		childViews, err := s.builder.build(s.ctx, children, viewerID)
		if err != nil {
			return nil, err
		}
		view.Replies = childViews
		view.Stats.RepliesCount = int64(len(childViews))
	}
	return views, nil
}
