package service

import (
	"context"

	interdb "streamzone/cmd/interaction/dal/db"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
)

type VideoListService struct {
	ctx       context.Context
	videos    *db.VideoRepo
	users     *userdb.UserRepo
	assembler viewAssembler
}

func NewVideoListService(ctx context.Context, videos *db.VideoRepo, users *userdb.UserRepo,
	reactions *interdb.ReactionRepo, comments *interdb.CommentRepo) *VideoListService {
	return &VideoListService{
		ctx:       ctx,
		videos:    videos,
		users:     users,
		assembler: viewAssembler{users: users, reactions: reactions, comments: comments},
	}
}

type FeedParams struct {
	Page      int64
	Limit     int64
	Category  string
	Search    string
	Uploader  string
	SortBy    string
	SortOrder string
}

type FeedResult struct {
	Videos     []*VideoView `json:"videos"`
	Pagination Pagination   `json:"pagination"`
	Total      int64        `json:"total"`
}

// ListFeed returns one page of the public feed. An unknown uploader filter
// yields an empty page rather than an error.
func (s *VideoListService) ListFeed(params FeedParams) (*FeedResult, error) {
	listParams := db.ListParams{
		Page:      params.Page,
		Limit:     params.Limit,
		Category:  params.Category,
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	}
	if listParams.Page < 1 {
		listParams.Page = constants.DefaultPage
	}
	if listParams.Limit < 1 {
		listParams.Limit = constants.DefaultLimit
	}
	if listParams.Limit > constants.MaxLimit {
		listParams.Limit = constants.MaxLimit
	}

	if params.Uploader != "" {
		uploader, err := s.users.FindByUsername(s.ctx, params.Uploader)
		if err != nil {
			return nil, err
		}
		if uploader == nil {
			return &FeedResult{
				Videos:     []*VideoView{},
				Pagination: NewPagination(listParams.Page, listParams.Limit, 0),
			}, nil
		}
		listParams.UploaderID = uploader.UserId
	}

	videos, total, err := s.videos.List(s.ctx, listParams)
	if err != nil {
		return nil, err
	}
	views, err := s.assembler.assemble(s.ctx, videos)
	if err != nil {
		return nil, err
	}
	return &FeedResult{
		Videos:     views,
		Pagination: NewPagination(listParams.Page, listParams.Limit, total),
		Total:      total,
	}, nil
}

// ListOwn returns the caller's videos regardless of visibility.
func (s *VideoListService) ListOwn(userID, page, limit int64) (*FeedResult, error) {
	listParams := db.ListParams{
		Page:             page,
		Limit:            limit,
		UploaderID:       userID,
		IncludeNonPublic: true,
	}
	if listParams.Page < 1 {
		listParams.Page = constants.DefaultPage
	}
	if listParams.Limit < 1 {
		listParams.Limit = constants.DefaultLimit
	}
	if listParams.Limit > constants.MaxLimit {
		listParams.Limit = constants.MaxLimit
	}

	videos, total, err := s.videos.List(s.ctx, listParams)
	if err != nil {
		return nil, err
	}
	views, err := s.assembler.assemble(s.ctx, videos)
	if err != nil {
		return nil, err
	}
	return &FeedResult{
		Videos:     views,
		Pagination: NewPagination(listParams.Page, listParams.Limit, total),
		Total:      total,
	}, nil
}
