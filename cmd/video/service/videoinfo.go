package service

import (
	"context"

	"github.com/sirupsen/logrus"

	interdb "streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
)

type VideoInfoService struct {
	ctx       context.Context
	videos    *db.VideoRepo
	users     *userdb.UserRepo
	subs      *userdb.SubscriptionRepo
	history   *userdb.WatchHistoryRepo
	reactions *interdb.ReactionRepo
	assembler viewAssembler
}

func NewVideoInfoService(ctx context.Context, videos *db.VideoRepo, users *userdb.UserRepo,
	subs *userdb.SubscriptionRepo, history *userdb.WatchHistoryRepo,
	reactions *interdb.ReactionRepo, comments *interdb.CommentRepo) *VideoInfoService {
	return &VideoInfoService{
		ctx:       ctx,
		videos:    videos,
		users:     users,
		subs:      subs,
		history:   history,
		reactions: reactions,
		assembler: viewAssembler{users: users, reactions: reactions, comments: comments},
	}
}

// GetVideo returns the detail view. Private videos are only visible to their
// uploader and admins; a view by anyone but the uploader bumps the counter
// and, for signed-in viewers, their watch history.
func (s *VideoInfoService) GetVideo(videoID, viewerID int64) (*VideoDetail, error) {
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

	if viewerID != video.UserId {
		if err := s.videos.IncrementViews(s.ctx, videoID); err != nil {
			logrus.Warnf("view count update failed for video %d: %v", videoID, err)
		} else {
			video.Views++
		}
		if viewerID != 0 {
			if err := s.history.RecordView(s.ctx, viewerID, videoID); err != nil {
				logrus.Warnf("watch history update failed for video %d: %v", videoID, err)
			}
		}
	}

	views, err := s.assembler.assemble(s.ctx, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	detail := &VideoDetail{VideoView: *views[0]}

	subscribers, err := s.subs.CountSubscribers(s.ctx, video.UserId)
	if err != nil {
		return nil, err
	}
	detail.Uploader.SubscribersCount = subscribers

	kind, err := s.reactions.VideoReactionKind(s.ctx, videoID, viewerID)
	if err != nil {
		return nil, err
	}
	detail.IsLiked = kind == constants.ReactionLike
	detail.IsDisliked = kind == constants.ReactionDislike

	return detail, nil
}
