package service

import (
	"context"
	"fmt"
	"strings"

	"streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
)

type UploaderView struct {
	Id               int64  `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	SubscribersCount int64  `json:"subscribersCount,omitempty"`
}

type VideoStats struct {
	LikesCount    int64 `json:"likesCount"`
	DislikesCount int64 `json:"dislikesCount"`
	CommentsCount int64 `json:"commentsCount"`
}

type VideoView struct {
	model.Video
	Tags     []string     `json:"tags"`
	Uploader UploaderView `json:"uploader"`
	Stats    VideoStats   `json:"stats"`
}

// VideoDetail adds the viewer's own reaction state on top of the list shape.
type VideoDetail struct {
	VideoView
	IsLiked    bool `json:"isLiked"`
	IsDisliked bool `json:"isDisliked"`
}

type Pagination struct {
	Current int64 `json:"current"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

func NewPagination(page, limit, total int64) Pagination {
	if limit < 1 {
		limit = 1
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return Pagination{
		Current: page,
		Total:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// viewAssembler turns video rows into response views: uploader info is
// attached from one batched lookup, counters per video.
type viewAssembler struct {
	users     *userdb.UserRepo
	reactions *db.ReactionRepo
	comments  *db.CommentRepo
}

func (a *viewAssembler) assemble(ctx context.Context, videos []*model.Video) ([]*VideoView, error) {
	uploaderIDs := make([]int64, 0, len(videos))
	seen := make(map[int64]bool, len(videos))
	for _, v := range videos {
		if !seen[v.UserId] {
			seen[v.UserId] = true
			uploaderIDs = append(uploaderIDs, v.UserId)
		}
	}
	uploaders, err := a.users.FindByIDs(ctx, uploaderIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*VideoView, 0, len(videos))
	for _, v := range videos {
		counts, err := a.reactions.CountVideoReactions(ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		commentsCount, err := a.comments.CountByVideo(ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		view := &VideoView{
			Video: *v,
			Tags:  splitTags(v.Tags),
			Stats: VideoStats{
				LikesCount:    counts.Likes,
				DislikesCount: counts.Dislikes,
				CommentsCount: commentsCount,
			},
		}
		if !view.IsExternal() {
			view.VideoUrl = StreamURL(v.VideoId)
		}
		if u := uploaders[v.UserId]; u != nil {
			view.Uploader = UploaderView{Id: u.UserId, Username: u.Username, Avatar: u.AvatarUrl}
		}
		views = append(views, view)
	}
	return views, nil
}

// StreamURL is the playback path for uploaded videos.
func StreamURL(videoID int64) string {
	return fmt.Sprintf("/api/videos/stream/%d", videoID)
}

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinTags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}
