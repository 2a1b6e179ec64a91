package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"streamzone/cmd/model"
	"streamzone/pkg/database"
)

type WatchHistoryRepo struct {
	d *database.Database
}

func NewWatchHistoryRepo(d *database.Database) *WatchHistoryRepo {
	return &WatchHistoryRepo{d: d}
}

// RecordView upserts the (user, video) row, refreshing watched_at on repeat
// views so the history stays one entry per video.
func (r *WatchHistoryRepo) RecordView(ctx context.Context, userID, videoID int64) error {
	entry := &model.WatchHistory{
		UserId:    userID,
		VideoId:   videoID,
		WatchedAt: time.Now(),
	}
	err := r.d.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": entry.WatchedAt}),
		}).
		Create(entry).Error
	if err != nil {
		return errors.WithMessage(err, "db.RecordView failed")
	}
	return nil
}

func (r *WatchHistoryRepo) DeleteByVideo(ctx context.Context, videoID int64) error {
	err := r.d.DB().WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.WatchHistory{}).Error
	if err != nil {
		return errors.WithMessage(err, "db.DeleteWatchHistoryByVideo failed")
	}
	return nil
}
