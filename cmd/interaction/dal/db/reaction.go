package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/pkg/database"
)

// ReactionRepo stores at most one reaction row per (target, user). Toggling
// the held kind removes the row; toggling the opposite kind flips it in
// place, so like and dislike stay mutually exclusive at the storage level.
type ReactionRepo struct {
	d *database.Database
}

func NewReactionRepo(d *database.Database) *ReactionRepo {
	return &ReactionRepo{d: d}
}

// ReactionCounts is the aggregate state returned after every toggle.
type ReactionCounts struct {
	Likes    int64
	Dislikes int64
}

func (r *ReactionRepo) ToggleVideoReaction(ctx context.Context, videoID, userID int64, kind string) error {
	err := r.d.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.VideoReaction
		err := tx.Where("video_id = ? AND user_id = ?", videoID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&model.VideoReaction{
				VideoId: videoID,
				UserId:  userID,
				Kind:    kind,
			}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("kind", kind).Error
		}
	})
	if err != nil {
		return errors.WithMessage(err, "db.ToggleVideoReaction failed")
	}
	return nil
}

func (r *ReactionRepo) ToggleCommentReaction(ctx context.Context, commentID, userID int64, kind string) error {
	err := r.d.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CommentReaction
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&model.CommentReaction{
				CommentId: commentID,
				UserId:    userID,
				Kind:      kind,
			}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("kind", kind).Error
		}
	})
	if err != nil {
		return errors.WithMessage(err, "db.ToggleCommentReaction failed")
	}
	return nil
}

func (r *ReactionRepo) CountVideoReactions(ctx context.Context, videoID int64) (ReactionCounts, error) {
	return r.countByKind(ctx, &model.VideoReaction{}, "video_id = ?", videoID)
}

func (r *ReactionRepo) CountCommentReactions(ctx context.Context, commentID int64) (ReactionCounts, error) {
	return r.countByKind(ctx, &model.CommentReaction{}, "comment_id = ?", commentID)
}

func (r *ReactionRepo) countByKind(ctx context.Context, m interface{}, cond string, id int64) (ReactionCounts, error) {
	var rows []struct {
		Kind  string
		Count int64
	}
	err := r.d.DB().WithContext(ctx).Model(m).
		Select("kind, COUNT(*) as count").
		Where(cond, id).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return ReactionCounts{}, errors.WithMessage(err, "db.CountReactions failed")
	}
	var counts ReactionCounts
	for _, row := range rows {
		switch row.Kind {
		case "like":
			counts.Likes = row.Count
		case "dislike":
			counts.Dislikes = row.Count
		}
	}
	return counts, nil
}

// VideoReactionKind returns the viewer's current reaction on the video, or
// "" when none is held.
func (r *ReactionRepo) VideoReactionKind(ctx context.Context, videoID, userID int64) (string, error) {
	if userID == 0 {
		return "", nil
	}
	var reaction model.VideoReaction
	err := r.d.DB().WithContext(ctx).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.WithMessage(err, "db.VideoReactionKind failed")
	}
	return reaction.Kind, nil
}

// CommentReactionKinds resolves the viewer's reactions over a batch of
// comments in one query.
func (r *ReactionRepo) CommentReactionKinds(ctx context.Context, commentIDs []int64, userID int64) (map[int64]string, error) {
	kinds := make(map[int64]string, len(commentIDs))
	if userID == 0 || len(commentIDs) == 0 {
		return kinds, nil
	}
	var reactions []*model.CommentReaction
	err := r.d.DB().WithContext(ctx).
		Where("comment_id IN ? AND user_id = ?", commentIDs, userID).
		Find(&reactions).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.CommentReactionKinds failed")
	}
	for _, reaction := range reactions {
		kinds[reaction.CommentId] = reaction.Kind
	}
	return kinds, nil
}

// CountCommentReactionsBatch aggregates like/dislike counts for a batch of
// comments in one grouped query.
func (r *ReactionRepo) CountCommentReactionsBatch(ctx context.Context, commentIDs []int64) (map[int64]ReactionCounts, error) {
	counts := make(map[int64]ReactionCounts, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		CommentId int64
		Kind      string
		Count     int64
	}
	err := r.d.DB().WithContext(ctx).Model(&model.CommentReaction{}).
		Select("comment_id, kind, COUNT(*) as count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id, kind").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.CountCommentReactionsBatch failed")
	}
	for _, row := range rows {
		c := counts[row.CommentId]
		switch row.Kind {
		case "like":
			c.Likes = row.Count
		case "dislike":
			c.Dislikes = row.Count
		}
		counts[row.CommentId] = c
	}
	return counts, nil
}

func (r *ReactionRepo) DeleteByVideo(ctx context.Context, videoID int64) error {
	err := r.d.DB().WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.VideoReaction{}).Error
	if err != nil {
		return errors.WithMessage(err, "db.DeleteVideoReactions failed")
	}
	return nil
}
