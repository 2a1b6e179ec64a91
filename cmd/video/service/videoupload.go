package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"streamzone/cmd/model"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/storage"
	"streamzone/pkg/utils"
)

type VideoUploadService struct {
	ctx     context.Context
	videos  *db.VideoRepo
	storage *storage.Manager
}

func NewVideoUploadService(ctx context.Context, videos *db.VideoRepo, st *storage.Manager) *VideoUploadService {
	return &VideoUploadService{ctx: ctx, videos: videos, storage: st}
}

type VideoParams struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Visibility  string
}

func (p *VideoParams) validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)

	if p.Title == "" || len(p.Title) > constants.MaxTitleLength {
		return errno.ParamErr.WithMessage("title must be 1-100 characters")
	}
	if len(p.Description) > constants.MaxDescriptionLength {
		return errno.ParamErr.WithMessage("description must be at most 5000 characters")
	}
	if p.Category == "" {
		p.Category = constants.DefaultCategory
	} else if !constants.IsValidCategory(p.Category) {
		return errno.ParamErr.WithMessage("unknown category")
	}
	if p.Visibility == "" {
		p.Visibility = constants.VisibilityPublic
	} else if !constants.IsValidVisibility(p.Visibility) {
		return errno.ParamErr.WithMessage("visibility must be public, private or unlisted")
	}
	return nil
}

// Upload stores the file, creates the video row and kicks off thumbnail
// generation in the background. A failed thumbnail never fails the upload.
func (s *VideoUploadService) Upload(userID int64, fh *multipart.FileHeader, params VideoParams) (*model.Video, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveVideo(fh)
	if err != nil {
		return nil, errno.ParamErr.WithMessage(err.Error())
	}

	video := &model.Video{
		UserId:       userID,
		Title:        params.Title,
		Description:  params.Description,
		VideoType:    constants.VideoTypeUploaded,
		Filename:     filename,
		OriginalName: fh.Filename,
		FileSize:     fh.Size,
		Category:     params.Category,
		Tags:         joinTags(params.Tags),
		Visibility:   params.Visibility,
	}
	if err := s.videos.Create(s.ctx, video); err != nil {
		_ = s.storage.RemoveVideo(filename)
		return nil, err
	}
	video.VideoUrl = StreamURL(video.VideoId)

	go s.generateThumbnail(video.VideoId, filename)

	return video, nil
}

// thumbnailer is swapped out in tests; ffmpeg is not available there.
var thumbnailer = utils.GenerateThumbnail

func (s *VideoUploadService) generateThumbnail(videoID int64, filename string) {
	thumbName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	if err := thumbnailer(s.storage.VideoPath(filename), s.storage.ImagePath(thumbName)); err != nil {
		logrus.Warnf("thumbnail generation failed for video %d: %v", videoID, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.videos.UpdateThumbnail(ctx, videoID, "/uploads/images/"+thumbName); err != nil {
		logrus.Warnf("thumbnail update failed for video %d: %v", videoID, err)
	}
}
