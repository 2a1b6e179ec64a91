package comment

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	interdb "streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/interaction/infras/redis"
	"streamzone/cmd/interaction/service"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/jwt"
)

type Handler struct {
	Comments  *interdb.CommentRepo
	Reactions *interdb.ReactionRepo
	Videos    *videodb.VideoRepo
	Users     *userdb.UserRepo
	Guard     *redis.Guard
}

func New(comments *interdb.CommentRepo, reactions *interdb.ReactionRepo,
	videos *videodb.VideoRepo, users *userdb.UserRepo, guard *redis.Guard) *Handler {
	return &Handler{Comments: comments, Reactions: reactions, Videos: videos, Users: users, Guard: guard}
}

func SendResponse(c *app.RequestContext, err errno.ErrNo, data interface{}) {
	c.JSON(err.StatusCode, utils.H{
		"code":    err.ErrCode,
		"message": err.ErrMsg,
		"data":    data,
	})
}

func pathID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type CreateParam struct {
	VideoId  int64  `json:"videoId"`
	Content  string `json:"content" vd:"len($)>0"`
	ParentId int64  `json:"parentCommentId"`
}

// Create posts a comment; parentId turns it into a reply on the parent's
// video.
func (h *Handler) Create(ctx context.Context, c *app.RequestContext) {
	var req CreateParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if req.VideoId <= 0 && req.ParentId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("videoId is required"), nil)
		return
	}

	view, err := service.NewCreateCommentService(ctx, h.Comments, h.Videos, h.Users, h.Reactions, h.Guard).
		CreateComment(jwt.UserID(c), req.VideoId, req.ParentId, req.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, view)
}

func (h *Handler) List(ctx context.Context, c *app.RequestContext) {
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil || videoID <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}

	views, err := service.NewListCommentsService(ctx, h.Comments, h.Videos, h.Users, h.Reactions).
		ListThread(videoID, jwt.UserID(c), c.Query("sortOrder"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{"comments": views})
}

type UpdateParam struct {
	Content string `json:"content" vd:"len($)>0"`
}

func (h *Handler) Update(ctx context.Context, c *app.RequestContext) {
	commentID, ok := pathID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}
	var req UpdateParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	view, err := service.NewUpdateCommentService(ctx, h.Comments, h.Users, h.Reactions).
		UpdateComment(commentID, jwt.UserID(c), req.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, view)
}

func (h *Handler) Delete(ctx context.Context, c *app.RequestContext) {
	commentID, ok := pathID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}

	err := service.NewDeleteCommentService(ctx, h.Comments, h.Users).
		DeleteComment(commentID, jwt.UserID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func (h *Handler) Like(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, constants.ReactionLike)
}

func (h *Handler) Dislike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, constants.ReactionDislike)
}

func (h *Handler) toggle(ctx context.Context, c *app.RequestContext, kind string) {
	commentID, ok := pathID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}

	result, err := service.NewReactionService(ctx, h.Reactions, h.Comments, h.Videos).
		ToggleCommentReaction(commentID, jwt.UserID(c), kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}
