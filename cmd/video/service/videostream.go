package service

import (
	"context"

	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/storage"
)

type VideoStreamService struct {
	ctx     context.Context
	videos  *db.VideoRepo
	users   *userdb.UserRepo
	storage *storage.Manager
}

func NewVideoStreamService(ctx context.Context, videos *db.VideoRepo, users *userdb.UserRepo, st *storage.Manager) *VideoStreamService {
	return &VideoStreamService{ctx: ctx, videos: videos, users: users, storage: st}
}

// StreamDecision tells the handler how to answer a playback request: follow
// the redirect for external videos, or range-serve the local file.
type StreamDecision struct {
	RedirectURL string
	FilePath    string
}

func (s *VideoStreamService) Resolve(videoID, viewerID int64) (*StreamDecision, error) {
	video, err := s.videos.FindByID(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	if video.Visibility == constants.VisibilityPrivate && viewerID != video.UserId {
		viewer, err := s.users.FindByID(s.ctx, viewerID)
		if err != nil {
			return nil, err
		}
		if viewer == nil || !viewer.IsAdmin() {
			return nil, errno.ForbiddenErr.WithMessage("this video is private")
		}
	}

	if video.IsExternal() {
		return &StreamDecision{RedirectURL: video.VideoUrl}, nil
	}
	if !s.storage.ServeLocal() {
		return nil, errno.StreamingUnavailableErr
	}
	if video.Filename == "" {
		return nil, errno.NotFoundErr.WithMessage("video file not found")
	}
	return &StreamDecision{FilePath: s.storage.VideoPath(video.Filename)}, nil
}
