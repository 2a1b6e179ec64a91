package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"streamzone/cmd/model"
	"streamzone/pkg/database"
)

type SubscriptionRepo struct {
	d *database.Database
}

func NewSubscriptionRepo(d *database.Database) *SubscriptionRepo {
	return &SubscriptionRepo{d: d}
}

// Subscribe is idempotent: re-subscribing to the same channel is a no-op
// thanks to the unique (subscriber, channel) index.
func (r *SubscriptionRepo) Subscribe(ctx context.Context, subscriberID, channelID int64) error {
	sub := &model.Subscription{SubscriberId: subscriberID, ChannelId: channelID}
	err := r.d.DB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sub).Error
	if err != nil {
		return errors.WithMessage(err, "db.Subscribe failed")
	}
	return nil
}

func (r *SubscriptionRepo) Unsubscribe(ctx context.Context, subscriberID, channelID int64) error {
	err := r.d.DB().WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{}).Error
	if err != nil {
		return errors.WithMessage(err, "db.Unsubscribe failed")
	}
	return nil
}

func (r *SubscriptionRepo) IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.d.DB().WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	if err != nil {
		return false, errors.WithMessage(err, "db.IsSubscribed failed")
	}
	return count > 0, nil
}

func (r *SubscriptionRepo) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := r.d.DB().WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	if err != nil {
		return 0, errors.WithMessage(err, "db.CountSubscribers failed")
	}
	return count, nil
}

// ListChannels returns the users the subscriber follows.
func (r *SubscriptionRepo) ListChannels(ctx context.Context, subscriberID int64) ([]*model.User, error) {
	var users []*model.User
	err := r.d.DB().WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = users.user_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Find(&users).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.ListChannels failed")
	}
	return users, nil
}

// ListSubscribers returns the users following the channel.
func (r *SubscriptionRepo) ListSubscribers(ctx context.Context, channelID int64) ([]*model.User, error) {
	var users []*model.User
	err := r.d.DB().WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.user_id").
		Where("subscriptions.channel_id = ?", channelID).
		Find(&users).Error
	if err != nil {
		return nil, errors.WithMessage(err, "db.ListSubscribers failed")
	}
	return users, nil
}
