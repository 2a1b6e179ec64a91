package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/pkg/constants"
	"streamzone/pkg/database"
)

type VideoRepo struct {
	d *database.Database
}

func NewVideoRepo(d *database.Database) *VideoRepo {
	return &VideoRepo{d: d}
}

func (r *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	if err := r.d.DB().WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "db.CreateVideo failed")
	}
	return nil
}

// FindByID returns (nil, nil) when the video does not exist.
func (r *VideoRepo) FindByID(ctx context.Context, videoID int64) (*model.Video, error) {
	var video model.Video
	err := r.d.DB().WithContext(ctx).Where("video_id = ?", videoID).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindVideoByID failed")
	}
	return &video, nil
}

// FindExternal looks up a linked video by its external id for one uploader,
// so the same link cannot be added twice.
func (r *VideoRepo) FindExternal(ctx context.Context, userID int64, externalID string) (*model.Video, error) {
	var video model.Video
	err := r.d.DB().WithContext(ctx).
		Where("user_id = ? AND external_id = ? AND video_type = ?",
			userID, externalID, constants.VideoTypeExternal).
		First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindExternalVideo failed")
	}
	return &video, nil
}

// ListParams narrows and orders the feed query. Zero values mean "no filter";
// SortBy must be one of the whitelisted columns.
type ListParams struct {
	Page     int64
	Limit    int64
	Category string
	Search   string
	// UploaderID restricts to one uploader's videos.
	UploaderID int64
	// IncludeNonPublic lifts the public-only filter for owner listings.
	IncludeNonPublic bool
	SortBy           string
	SortOrder        string
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"title":     "title",
}

func (p *ListParams) normalize() {
	if p.Page < 1 {
		p.Page = constants.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = constants.DefaultLimit
	}
	if p.Limit > constants.MaxLimit {
		p.Limit = constants.MaxLimit
	}
	if _, ok := sortColumns[p.SortBy]; !ok {
		p.SortBy = "createdAt"
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
}

// List returns one page of videos plus the total row count for pagination.
func (r *VideoRepo) List(ctx context.Context, params ListParams) ([]*model.Video, int64, error) {
	params.normalize()

	q := r.d.DB().WithContext(ctx).Model(&model.Video{})
	if !params.IncludeNonPublic {
		q = q.Where("visibility = ?", constants.VisibilityPublic)
	}
	if params.Category != "" {
		q = q.Where("category = ?", params.Category)
	}
	if params.UploaderID > 0 {
		q = q.Where("user_id = ?", params.UploaderID)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "db.CountVideos failed")
	}

	var videos []*model.Video
	err := q.Order(sortColumns[params.SortBy] + " " + params.SortOrder).
		Offset(int((params.Page - 1) * params.Limit)).
		Limit(int(params.Limit)).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "db.ListVideos failed")
	}
	return videos, total, nil
}

func (r *VideoRepo) CountByUploader(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.d.DB().WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, errors.WithMessage(err, "db.CountVideosByUploader failed")
	}
	return count, nil
}

// IncrementViews bumps the counter atomically in the database, so concurrent
// viewers never lose an increment.
func (r *VideoRepo) IncrementViews(ctx context.Context, videoID int64) error {
	err := r.d.DB().WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return errors.WithMessage(err, "db.IncrementViews failed")
	}
	return nil
}

func (r *VideoRepo) UpdateThumbnail(ctx context.Context, videoID int64, thumbnail string) error {
	err := r.d.DB().WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoID).
		Update("thumbnail", thumbnail).Error
	if err != nil {
		return errors.WithMessage(err, "db.UpdateThumbnail failed")
	}
	return nil
}

func (r *VideoRepo) Delete(ctx context.Context, videoID int64) error {
	err := r.d.DB().WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.Video{}).Error
	if err != nil {
		return errors.WithMessage(err, "db.DeleteVideo failed")
	}
	return nil
}
