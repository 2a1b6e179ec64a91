package service

import (
	"context"

	"streamzone/cmd/user/dal/db"
	"streamzone/pkg/errno"
)

type SubscribeService struct {
	ctx   context.Context
	users *db.UserRepo
	subs  *db.SubscriptionRepo
}

func NewSubscribeService(ctx context.Context, users *db.UserRepo, subs *db.SubscriptionRepo) *SubscribeService {
	return &SubscribeService{ctx: ctx, users: users, subs: subs}
}

type SubscriptionState struct {
	IsSubscribed     bool  `json:"isSubscribed"`
	SubscribersCount int64 `json:"subscribersCount"`
}

func (s *SubscribeService) Subscribe(subscriberID, channelID int64) (*SubscriptionState, error) {
	if subscriberID == channelID {
		return nil, errno.ParamErr.WithMessage("cannot subscribe to yourself")
	}
	channel, err := s.users.FindByID(s.ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}
	if err := s.subs.Subscribe(s.ctx, subscriberID, channelID); err != nil {
		return nil, err
	}
	return s.state(subscriberID, channelID)
}

func (s *SubscribeService) Unsubscribe(subscriberID, channelID int64) (*SubscriptionState, error) {
	if err := s.subs.Unsubscribe(s.ctx, subscriberID, channelID); err != nil {
		return nil, err
	}
	return s.state(subscriberID, channelID)
}

func (s *SubscribeService) state(subscriberID, channelID int64) (*SubscriptionState, error) {
	subscribed, err := s.subs.IsSubscribed(s.ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	count, err := s.subs.CountSubscribers(s.ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &SubscriptionState{IsSubscribed: subscribed, SubscribersCount: count}, nil
}
