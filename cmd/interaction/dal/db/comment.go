package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/pkg/database"
)

type CommentRepo struct {
	d *database.Database
}

func NewCommentRepo(d *database.Database) *CommentRepo {
	return &CommentRepo{d: d}
}

func (r *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if err := r.d.DB().WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "db.CreateComment failed")
	}
	return nil
}

// FindByID returns (nil, nil) when the comment does not exist.
func (r *CommentRepo) FindByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.d.DB().WithContext(ctx).Where("comment_id = ?", commentID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindCommentByID failed")
	}
	return &comment, nil
}

// ListTopLevel returns a video's top-level comments, newest first by default.
func (r *CommentRepo) ListTopLevel(ctx context.Context, videoID int64, sortOrder string) ([]*model.Comment, error) {
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	var comments []*model.Comment
	err := r.d.DB().WithContext(ctx).
		Where("video_id = ? AND parent_id = 0", videoID).
		Order("created_at " + sortOrder).
		Find(&comments).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.ListTopLevelComments failed")
	}
	return comments, nil
}

// ListReplies resolves replies for a batch of parents in one query, oldest
// first, keyed by parent id.
func (r *CommentRepo) ListReplies(ctx context.Context, parentIDs []int64) (map[int64][]*model.Comment, error) {
	replies := make(map[int64][]*model.Comment, len(parentIDs))
	if len(parentIDs) == 0 {
		return replies, nil
	}
	var comments []*model.Comment
	err := r.d.DB().WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.ListReplies failed")
	}
	for _, c := range comments {
		replies[c.ParentId] = append(replies[c.ParentId], c)
	}
	return replies, nil
}

func (r *CommentRepo) CountByVideo(ctx context.Context, videoID int64) (int64, error) {
	var count int64
	err := r.d.DB().WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoID).Count(&count).Error
	if err != nil {
		return 0, errors.WithMessage(err, "db.CountCommentsByVideo failed")
	}
	return count, nil
}

func (r *CommentRepo) Update(ctx context.Context, comment *model.Comment) error {
	err := r.d.DB().WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", comment.CommentId).
		Updates(map[string]interface{}{
			"content":   comment.Content,
			"is_edited": comment.IsEdited,
			"edited_at": comment.EditedAt,
		}).Error
	if err != nil {
		return errors.WithMessage(err, "db.UpdateComment failed")
	}
	return nil
}

// DeleteWithReplies removes a comment, its direct replies and every reaction
// attached to any of them, in one transaction.
func (r *CommentRepo) DeleteWithReplies(ctx context.Context, commentID int64) error {
	err := r.d.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var replyIDs []int64
		if err := tx.Model(&model.Comment{}).
			Where("parent_id = ?", commentID).
			Pluck("comment_id", &replyIDs).Error; err != nil {
			return err
		}
		ids := append(replyIDs, commentID)
		if err := tx.Where("comment_id IN ?", ids).
			Delete(&model.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("comment_id IN ?", ids).
			Delete(&model.Comment{}).Error
	})
	if err != nil {
		return errors.WithMessage(err, "db.DeleteCommentWithReplies failed")
	}
	return nil
}

// DeleteByVideo removes all of a video's comments and their reactions, used
// when the video itself is deleted.
func (r *CommentRepo) DeleteByVideo(ctx context.Context, videoID int64) error {
	err := r.d.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&model.Comment{}).
			Where("video_id = ?", videoID).
			Pluck("comment_id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("comment_id IN ?", ids).
			Delete(&model.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoID).
			Delete(&model.Comment{}).Error
	})
	if err != nil {
		return errors.WithMessage(err, "db.DeleteCommentsByVideo failed")
	}
	return nil
}
