package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"streamzone/cmd/model"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/youtube"
)

type VideoLinkService struct {
	ctx    context.Context
	videos *db.VideoRepo
}

func NewVideoLinkService(ctx context.Context, videos *db.VideoRepo) *VideoLinkService {
	return &VideoLinkService{ctx: ctx, videos: videos}
}

// AddLink registers an external video by URL. Metadata comes from the oEmbed
// endpoint; when that lookup fails the link is still added with defaults.
func (s *VideoLinkService) AddLink(userID int64, rawURL string, params VideoParams) (*model.Video, error) {
	if !youtube.IsValidURL(rawURL) {
		return nil, errno.ParamErr.WithMessage("not a valid YouTube URL")
	}
	videoID := youtube.ExtractID(rawURL)
	if videoID == "" {
		return nil, errno.ParamErr.WithMessage("could not extract video id from URL")
	}

	existing, err := s.videos.FindExternal(s.ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errno.ParamErr.WithMessage("this video has already been added")
	}

	title := params.Title
	thumbnail := fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)

	metaCtx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	if meta, err := youtube.FetchMetadata(metaCtx, videoID); err != nil {
		logrus.Warnf("oembed lookup failed for %s: %v", videoID, err)
	} else {
		if title == "" {
			title = meta.Title
		}
		if meta.Thumbnail != "" {
			thumbnail = meta.Thumbnail
		}
	}
	if title == "" {
		title = "YouTube Video"
	}
	params.Title = title
	if err := params.validate(); err != nil {
		return nil, err
	}

	video := &model.Video{
		UserId:      userID,
		Title:       params.Title,
		Description: params.Description,
		VideoType:   constants.VideoTypeExternal,
		ExternalId:  videoID,
		VideoUrl:    youtube.EmbedURL(videoID),
		Thumbnail:   thumbnail,
		Category:    params.Category,
		Tags:        joinTags(params.Tags),
		Visibility:  params.Visibility,
	}
	if err := s.videos.Create(s.ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}
