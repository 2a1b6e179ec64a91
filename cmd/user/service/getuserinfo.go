package service

import (
	"context"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/errno"
)

type GetUserInfoService struct {
	ctx    context.Context
	users  *db.UserRepo
	subs   *db.SubscriptionRepo
	videos *videodb.VideoRepo
}

func NewGetUserInfoService(ctx context.Context, users *db.UserRepo, subs *db.SubscriptionRepo, videos *videodb.VideoRepo) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx, users: users, subs: subs, videos: videos}
}

type ProfileStats struct {
	VideosCount        int64 `json:"videosCount"`
	SubscribersCount   int64 `json:"subscribersCount"`
	SubscriptionsCount int64 `json:"subscriptionsCount"`
}

// ChannelView is the compact user shape used in subscription lists.
type ChannelView struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type Profile struct {
	model.User
	Stats         ProfileStats  `json:"stats"`
	Subscriptions []ChannelView `json:"subscriptions"`
	Subscribers   []ChannelView `json:"subscribers"`
}

func (s *GetUserInfoService) GetUserInfo(userID int64) (*Profile, error) {
	user, err := s.users.FindByID(s.ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	videosCount, err := s.videos.CountByUploader(s.ctx, userID)
	if err != nil {
		return nil, err
	}
	channels, err := s.subs.ListChannels(s.ctx, userID)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subs.ListSubscribers(s.ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User: *user,
		Stats: ProfileStats{
			VideosCount:        videosCount,
			SubscribersCount:   int64(len(subscribers)),
			SubscriptionsCount: int64(len(channels)),
		},
		Subscriptions: toChannelViews(channels),
		Subscribers:   toChannelViews(subscribers),
	}, nil
}

func toChannelViews(users []*model.User) []ChannelView {
	views := make([]ChannelView, 0, len(users))
	for _, u := range users {
		views = append(views, ChannelView{
			Id:       u.UserId,
			Username: u.Username,
			Avatar:   u.AvatarUrl,
		})
	}
	return views
}
