package service

import (
	"context"

	"streamzone/cmd/interaction/dal/db"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/pkg/errno"
)

type DeleteCommentService struct {
	ctx      context.Context
	comments *db.CommentRepo
	users    *userdb.UserRepo
}

func NewDeleteCommentService(ctx context.Context, comments *db.CommentRepo, users *userdb.UserRepo) *DeleteCommentService {
	return &DeleteCommentService{ctx: ctx, comments: comments, users: users}
}

// DeleteComment removes the comment and all of its replies. The author and
// admins may delete.
func (s *DeleteCommentService) DeleteComment(commentID, actorID int64) error {
	comment, err := s.comments.FindByID(s.ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errno.NotFoundErr.WithMessage("comment not found")
	}

	if comment.UserId != actorID {
		actor, err := s.users.FindByID(s.ctx, actorID)
		if err != nil {
			return err
		}
		if actor == nil || !actor.IsAdmin() {
			return errno.ForbiddenErr.WithMessage("only the author can delete this comment")
		}
	}

	return s.comments.DeleteWithReplies(s.ctx, commentID)
}
