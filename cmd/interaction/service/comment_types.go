package service

import (
	"context"
	"time"

	"streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/pkg/constants"
)

type AuthorView struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type CommentStats struct {
	LikesCount    int64 `json:"likesCount"`
	DislikesCount int64 `json:"dislikesCount"`
	RepliesCount  int64 `json:"repliesCount"`
}

type CommentView struct {
	Id         int64          `json:"id"`
	VideoId    int64          `json:"videoId"`
	ParentId   int64          `json:"parentId"`
	Content    string         `json:"content"`
	Author     AuthorView     `json:"author"`
	Stats      CommentStats   `json:"stats"`
	IsLiked    bool           `json:"isLiked"`
	IsDisliked bool           `json:"isDisliked"`
	IsEdited   bool           `json:"isEdited"`
	EditedAt   *time.Time     `json:"editedAt"`
	CreatedAt  time.Time      `json:"createdAt"`
	Replies    []*CommentView `json:"replies"`
}

// commentViewBuilder decorates comment rows with author info, counters and
// the viewer's reaction state, all from batched lookups.
type commentViewBuilder struct {
	users     *userdb.UserRepo
	reactions *db.ReactionRepo
}

func (b *commentViewBuilder) build(ctx context.Context, comments []*model.Comment, viewerID int64) ([]*CommentView, error) {
	if len(comments) == 0 {
		return []*CommentView{}, nil
	}

	ids := make([]int64, 0, len(comments))
	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		ids = append(ids, c.CommentId)
		if !seen[c.UserId] {
			seen[c.UserId] = true
			authorIDs = append(authorIDs, c.UserId)
		}
	}

	authors, err := b.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := b.reactions.CountCommentReactionsBatch(ctx, ids)
	if err != nil {
		return nil, err
	}
	kinds, err := b.reactions.CommentReactionKinds(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		view := &CommentView{
			Id:        c.CommentId,
			VideoId:   c.VideoId,
			ParentId:  c.ParentId,
			Content:   c.Content,
			IsEdited:  c.IsEdited,
			EditedAt:  c.EditedAt,
			CreatedAt: c.CreatedAt,
			Replies:   []*CommentView{},
		}
		if a := authors[c.UserId]; a != nil {
			view.Author = AuthorView{Id: a.UserId, Username: a.Username, Avatar: a.AvatarUrl}
		}
		cc := counts[c.CommentId]
		view.Stats.LikesCount = cc.Likes
		view.Stats.DislikesCount = cc.Dislikes
		held := kinds[c.CommentId]
		view.IsLiked = held == constants.ReactionLike
		view.IsDisliked = held == constants.ReactionDislike
		views = append(views, view)
	}
	return views, nil
}
