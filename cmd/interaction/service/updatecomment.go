package service

import (
	"context"
	"strings"
	"time"

	"streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
)

type UpdateCommentService struct {
	ctx      context.Context
	comments *db.CommentRepo
	builder  commentViewBuilder
}

func NewUpdateCommentService(ctx context.Context, comments *db.CommentRepo,
	users *userdb.UserRepo, reactions *db.ReactionRepo) *UpdateCommentService {
	return &UpdateCommentService{
		ctx:      ctx,
		comments: comments,
		builder:  commentViewBuilder{users: users, reactions: reactions},
	}
}

// UpdateComment edits the body. Only the author may edit; the comment is
// marked edited with a timestamp.
func (s *UpdateCommentService) UpdateComment(commentID, userID int64, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if len(content) < constants.MinCommentLength {
		return nil, errno.ParamErr.WithMessage("comment cannot be empty")
	}
	if len(content) > constants.MaxCommentLength {
		return nil, errno.ParamErr.WithMessage("comment must be at most 1000 characters")
	}

	comment, err := s.comments.FindByID(s.ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	if comment.UserId != userID {
		return nil, errno.ForbiddenErr.WithMessage("only the author can edit this comment")
	}

	now := time.Now()
	comment.Content = content
	comment.IsEdited = true
	comment.EditedAt = &now
	if err := s.comments.Update(s.ctx, comment); err != nil {
		return nil, err
	}

	views, err := s.builder.build(s.ctx, []*model.Comment{comment}, userID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}
