package model

import "time"

type User struct {
	UserId    int64     `json:"id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"column:username;size:32;uniqueIndex"`
	Email     string    `json:"email" gorm:"column:email;size:128;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:password;size:128"`
	Bio       string    `json:"bio" gorm:"column:bio;size:512"`
	AvatarUrl string    `json:"avatar" gorm:"column:avatar_url;size:256"`
	Role      string    `json:"role" gorm:"column:role;size:16;default:user"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == "admin" }

// Subscription links a subscriber to a channel owner. One row replaces the
// mirrored subscriber/subscription lists of the document model.
type Subscription struct {
	SubscriptionId int64     `json:"id" gorm:"column:subscription_id;primaryKey;autoIncrement"`
	SubscriberId   int64     `json:"subscriberId" gorm:"column:subscriber_id;uniqueIndex:uk_sub_channel"`
	ChannelId      int64     `json:"channelId" gorm:"column:channel_id;uniqueIndex:uk_sub_channel"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// WatchHistory keeps one row per (user, video); WatchedAt is refreshed on
// every view.
type WatchHistory struct {
	WatchHistoryId int64     `json:"id" gorm:"column:watch_history_id;primaryKey;autoIncrement"`
	UserId         int64     `json:"userId" gorm:"column:user_id;uniqueIndex:uk_user_video"`
	VideoId        int64     `json:"videoId" gorm:"column:video_id;uniqueIndex:uk_user_video"`
	WatchedAt      time.Time `json:"watchedAt" gorm:"column:watched_at"`
}

func (WatchHistory) TableName() string { return "watch_histories" }
