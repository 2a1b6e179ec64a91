package constants

import "time"

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 50

	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
	MaxBioLength      = 500

	MaxTitleLength       = 100
	MaxDescriptionLength = 5000

	MinCommentLength = 1
	MaxCommentLength = 1000

	// Max comments per user per minute.
	CommentRateLimit = 10
	// Window for duplicate comment detection.
	DuplicateCommentWindow = 5 * time.Minute

	// Thumbnails are grabbed this many seconds into the video.
	ThumbnailOffsetSeconds = 5
	ThumbnailSize          = "480x270"

	AvatarSize = 256
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	VideoTypeUploaded = "uploaded"
	VideoTypeExternal = "external"
)

const (
	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityUnlisted = "unlisted"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

var Categories = []string{
	"Entertainment",
	"Education",
	"Music",
	"Gaming",
	"Sports",
	"News",
	"Technology",
	"Other",
}

const DefaultCategory = "Other"

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidVisibility(visibility string) bool {
	switch visibility {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}
