package model

import "time"

// Comment with ParentId = 0 is a top-level comment; replies carry the id of
// their parent. Reply lists are always resolved by querying parent_id.
type Comment struct {
	CommentId int64      `json:"id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	VideoId   int64      `json:"videoId" gorm:"column:video_id;index:idx_video_created"`
	UserId    int64      `json:"authorId" gorm:"column:user_id;index"`
	ParentId  int64      `json:"parentId" gorm:"column:parent_id;index"`
	Content   string     `json:"content" gorm:"column:content;size:1024"`
	IsEdited  bool       `json:"isEdited" gorm:"column:is_edited"`
	EditedAt  *time.Time `json:"editedAt" gorm:"column:edited_at"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;index:idx_video_created"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) IsTopLevel() bool { return c.ParentId == 0 }

type CommentReaction struct {
	CommentReactionId int64     `json:"id" gorm:"column:comment_reaction_id;primaryKey;autoIncrement"`
	CommentId         int64     `json:"commentId" gorm:"column:comment_id;uniqueIndex:uk_comment_user"`
	UserId            int64     `json:"userId" gorm:"column:user_id;uniqueIndex:uk_comment_user"`
	Kind              string    `json:"kind" gorm:"column:kind;size:8"`
	CreatedAt         time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (CommentReaction) TableName() string { return "comment_reactions" }
