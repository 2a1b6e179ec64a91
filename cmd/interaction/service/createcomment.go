package service

import (
	"context"
	"strings"

	"streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/interaction/infras/redis"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
)

type CreateCommentService struct {
	ctx      context.Context
	comments *db.CommentRepo
	videos   *videodb.VideoRepo
	users    *userdb.UserRepo
	guard    *redis.Guard
	builder  commentViewBuilder
}

func NewCreateCommentService(ctx context.Context, comments *db.CommentRepo, videos *videodb.VideoRepo,
	users *userdb.UserRepo, reactions *db.ReactionRepo, guard *redis.Guard) *CreateCommentService {
	return &CreateCommentService{
		ctx:      ctx,
		comments: comments,
		videos:   videos,
		users:    users,
		guard:    guard,
		builder:  commentViewBuilder{users: users, reactions: reactions},
	}
}

// CreateComment posts a comment or, when parentID is set, a reply. Replies
// always land on the parent's video; replying to a reply is rejected so
// threads stay one level deep.
func (s *CreateCommentService) CreateComment(userID, videoID, parentID int64, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if len(content) < constants.MinCommentLength {
		return nil, errno.ParamErr.WithMessage("comment cannot be empty")
	}
	if len(content) > constants.MaxCommentLength {
		return nil, errno.ParamErr.WithMessage("comment must be at most 1000 characters")
	}

	if parentID != 0 {
		parent, err := s.comments.FindByID(s.ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errno.NotFoundErr.WithMessage("parent comment not found")
		}
		if !parent.IsTopLevel() {
			return nil, errno.ParamErr.WithMessage("cannot reply to a reply")
		}
		videoID = parent.VideoId
	}

	video, err := s.videos.FindByID(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	if !s.guard.AllowComment(s.ctx, userID) {
		return nil, errno.ParamErr.WithMessage("you are commenting too fast, slow down")
	}
	if s.guard.IsDuplicate(s.ctx, userID, videoID, content) {
		return nil, errno.ParamErr.WithMessage("duplicate comment")
	}

	comment := &model.Comment{
		VideoId:  videoID,
		UserId:   userID,
		ParentId: parentID,
		Content:  content,
	}
	if err := s.comments.Create(s.ctx, comment); err != nil {
		return nil, err
	}

	views, err := s.builder.build(s.ctx, []*model.Comment{comment}, userID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}
