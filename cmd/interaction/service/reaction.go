package service

import (
	"context"

	"streamzone/cmd/interaction/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
)

type ReactionService struct {
	ctx       context.Context
	reactions *db.ReactionRepo
	comments  *db.CommentRepo
	videos    *videodb.VideoRepo
}

func NewReactionService(ctx context.Context, reactions *db.ReactionRepo, comments *db.CommentRepo, videos *videodb.VideoRepo) *ReactionService {
	return &ReactionService{ctx: ctx, reactions: reactions, comments: comments, videos: videos}
}

// ReactionResult is the state after a toggle: fresh counters plus the
// caller's own membership.
type ReactionResult struct {
	LikesCount    int64 `json:"likesCount"`
	DislikesCount int64 `json:"dislikesCount"`
	IsLiked       bool  `json:"isLiked"`
	IsDisliked    bool  `json:"isDisliked"`
}

func validKind(kind string) bool {
	return kind == constants.ReactionLike || kind == constants.ReactionDislike
}

func (s *ReactionService) ToggleVideoReaction(videoID, userID int64, kind string) (*ReactionResult, error) {
	if !validKind(kind) {
		return nil, errno.ParamErr.WithMessage("reaction must be like or dislike")
	}
	video, err := s.videos.FindByID(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	if err := s.reactions.ToggleVideoReaction(s.ctx, videoID, userID, kind); err != nil {
		return nil, err
	}

	counts, err := s.reactions.CountVideoReactions(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	held, err := s.reactions.VideoReactionKind(s.ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	return &ReactionResult{
		LikesCount:    counts.Likes,
		DislikesCount: counts.Dislikes,
		IsLiked:       held == constants.ReactionLike,
		IsDisliked:    held == constants.ReactionDislike,
	}, nil
}

func (s *ReactionService) ToggleCommentReaction(commentID, userID int64, kind string) (*ReactionResult, error) {
	if !validKind(kind) {
		return nil, errno.ParamErr.WithMessage("reaction must be like or dislike")
	}
	comment, err := s.comments.FindByID(s.ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}

	if err := s.reactions.ToggleCommentReaction(s.ctx, commentID, userID, kind); err != nil {
		return nil, err
	}

	counts, err := s.reactions.CountCommentReactions(s.ctx, commentID)
	if err != nil {
		return nil, err
	}
	kinds, err := s.reactions.CommentReactionKinds(s.ctx, []int64{commentID}, userID)
	if err != nil {
		return nil, err
	}
	held := kinds[commentID]
	return &ReactionResult{
		LikesCount:    counts.Likes,
		DislikesCount: counts.Dislikes,
		IsLiked:       held == constants.ReactionLike,
		IsDisliked:    held == constants.ReactionDislike,
	}, nil
}
