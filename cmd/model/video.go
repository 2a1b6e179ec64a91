package model

import "time"

type Video struct {
	VideoId     int64  `json:"id" gorm:"column:video_id;primaryKey;autoIncrement"`
	UserId      int64  `json:"uploaderId" gorm:"column:user_id;index:idx_uploader_created"`
	Title       string `json:"title" gorm:"column:title;size:128"`
	Description string `json:"description" gorm:"column:description;size:8192"`

	// VideoType is "uploaded" for files on local disk and "external" for
	// linked videos that are served by redirect.
	VideoType    string `json:"videoType" gorm:"column:video_type;size:16"`
	Filename     string `json:"-" gorm:"column:filename;size:256"`
	OriginalName string `json:"originalName,omitempty" gorm:"column:original_name;size:256"`
	FileSize     int64  `json:"fileSize,omitempty" gorm:"column:file_size"`
	ExternalId   string `json:"externalId,omitempty" gorm:"column:external_id;size:32"`
	VideoUrl     string `json:"videoUrl" gorm:"column:video_url;size:512"`
	Thumbnail    string `json:"thumbnail" gorm:"column:thumbnail;size:256"`

	Category   string `json:"category" gorm:"column:category;size:32;index:idx_category_created"`
	Tags       string `json:"-" gorm:"column:tags;size:512"`
	Visibility string `json:"visibility" gorm:"column:visibility;size:16;index"`
	Views      int64  `json:"views" gorm:"column:views"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;index:idx_uploader_created;index:idx_category_created"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Video) TableName() string { return "videos" }

func (v *Video) IsExternal() bool { return v.VideoType == "external" }

// VideoReaction holds at most one row per (video, user); Kind flips between
// like and dislike so a user can never hold both at once.
type VideoReaction struct {
	VideoReactionId int64     `json:"id" gorm:"column:video_reaction_id;primaryKey;autoIncrement"`
	VideoId         int64     `json:"videoId" gorm:"column:video_id;uniqueIndex:uk_video_user"`
	UserId          int64     `json:"userId" gorm:"column:user_id;uniqueIndex:uk_video_user"`
	Kind            string    `json:"kind" gorm:"column:kind;size:8"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (VideoReaction) TableName() string { return "video_reactions" }
