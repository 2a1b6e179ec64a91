package service

import (
	"context"
	"strings"

	interdb "streamzone/cmd/interaction/dal/db"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/errno"
	"streamzone/pkg/storage"
)

type VideoDeleteService struct {
	ctx       context.Context
	videos    *db.VideoRepo
	users     *userdb.UserRepo
	history   *userdb.WatchHistoryRepo
	comments  *interdb.CommentRepo
	reactions *interdb.ReactionRepo
	storage   *storage.Manager
}

func NewVideoDeleteService(ctx context.Context, videos *db.VideoRepo, users *userdb.UserRepo,
	history *userdb.WatchHistoryRepo, comments *interdb.CommentRepo,
	reactions *interdb.ReactionRepo, st *storage.Manager) *VideoDeleteService {
	return &VideoDeleteService{
		ctx:       ctx,
		videos:    videos,
		users:     users,
		history:   history,
		comments:  comments,
		reactions: reactions,
		storage:   st,
	}
}

// DeleteVideo removes the video, its comments, reactions, watch history rows
// and any stored files. Only the uploader or an admin may delete.
func (s *VideoDeleteService) DeleteVideo(videoID, actorID int64) error {
	video, err := s.videos.FindByID(s.ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("video not found")
	}

	if video.UserId != actorID {
		actor, err := s.users.FindByID(s.ctx, actorID)
		if err != nil {
			return err
		}
		if actor == nil || !actor.IsAdmin() {
			return errno.ForbiddenErr.WithMessage("only the uploader can delete this video")
		}
	}

	if err := s.comments.DeleteByVideo(s.ctx, videoID); err != nil {
		return err
	}
	if err := s.reactions.DeleteByVideo(s.ctx, videoID); err != nil {
		return err
	}
	if err := s.history.DeleteByVideo(s.ctx, videoID); err != nil {
		return err
	}
	if err := s.videos.Delete(s.ctx, videoID); err != nil {
		return err
	}

	if !video.IsExternal() {
		if video.Filename != "" {
			_ = s.storage.RemoveVideo(video.Filename)
		}
		if thumb := strings.TrimPrefix(video.Thumbnail, "/uploads/images/"); thumb != "" && thumb != video.Thumbnail {
			_ = s.storage.RemoveImage(thumb)
		}
	}
	return nil
}
