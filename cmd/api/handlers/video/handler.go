package video

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/pkg/errors"

	interdb "streamzone/cmd/interaction/dal/db"
	interservice "streamzone/cmd/interaction/service"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/cmd/video/service"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/jwt"
	"streamzone/pkg/storage"
	"streamzone/pkg/streaming"
)

type Handler struct {
	Videos    *videodb.VideoRepo
	Users     *userdb.UserRepo
	Subs      *userdb.SubscriptionRepo
	History   *userdb.WatchHistoryRepo
	Comments  *interdb.CommentRepo
	Reactions *interdb.ReactionRepo
	Storage   *storage.Manager
}

func New(videos *videodb.VideoRepo, users *userdb.UserRepo, subs *userdb.SubscriptionRepo,
	history *userdb.WatchHistoryRepo, comments *interdb.CommentRepo,
	reactions *interdb.ReactionRepo, st *storage.Manager) *Handler {
	return &Handler{
		Videos:    videos,
		Users:     users,
		Subs:      subs,
		History:   history,
		Comments:  comments,
		Reactions: reactions,
		Storage:   st,
	}
}

func SendResponse(c *app.RequestContext, err errno.ErrNo, data interface{}) {
	c.JSON(err.StatusCode, utils.H{
		"code":    err.ErrCode,
		"message": err.ErrMsg,
		"data":    data,
	})
}

func videoID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type FeedParam struct {
	Page      int64  `query:"page"`
	Limit     int64  `query:"limit"`
	Category  string `query:"category"`
	Search    string `query:"search"`
	Uploader  string `query:"uploader"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

func (h *Handler) Feed(ctx context.Context, c *app.RequestContext) {
	var req FeedParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	result, err := service.NewVideoListService(ctx, h.Videos, h.Users, h.Reactions, h.Comments).
		ListFeed(service.FeedParams{
			Page:      req.Page,
			Limit:     req.Limit,
			Category:  req.Category,
			Search:    req.Search,
			Uploader:  req.Uploader,
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func (h *Handler) Upload(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}

	video, err := service.NewVideoUploadService(ctx, h.Videos, h.Storage).
		Upload(jwt.UserID(c), fh, service.VideoParams{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			Tags:        splitParam(c.PostForm("tags")),
			Visibility:  c.PostForm("visibility"),
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, video)
}

type LinkParam struct {
	URL         string   `json:"youtubeUrl" vd:"len($)>0"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Visibility  string   `json:"visibility"`
}

func (h *Handler) AddLink(ctx context.Context, c *app.RequestContext) {
	var req LinkParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	video, err := service.NewVideoLinkService(ctx, h.Videos).
		AddLink(jwt.UserID(c), req.URL, service.VideoParams{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Tags:        req.Tags,
			Visibility:  req.Visibility,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, video)
}

func (h *Handler) MyVideos(ctx context.Context, c *app.RequestContext) {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	result, err := service.NewVideoListService(ctx, h.Videos, h.Users, h.Reactions, h.Comments).
		ListOwn(jwt.UserID(c), page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func (h *Handler) Detail(ctx context.Context, c *app.RequestContext) {
	id, ok := videoID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}

	detail, err := service.NewVideoInfoService(ctx, h.Videos, h.Users, h.Subs, h.History, h.Reactions, h.Comments).
		GetVideo(id, jwt.UserID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

// Stream serves playback: external videos answer with a redirect, uploaded
// files with a full or 206 partial response driven by the Range header.
func (h *Handler) Stream(ctx context.Context, c *app.RequestContext) {
	id, ok := videoID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}

	decision, err := service.NewVideoStreamService(ctx, h.Videos, h.Users, h.Storage).
		Resolve(id, jwt.UserID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if decision.RedirectURL != "" {
		c.Redirect(consts.StatusFound, []byte(decision.RedirectURL))
		return
	}

	result, err := streaming.StreamFile(decision.FilePath, string(c.GetHeader("Range")))
	if err != nil {
		if errors.Is(err, streaming.ErrFileNotFound) {
			SendResponse(c, errno.NotFoundErr.WithMessage("video file not found"), nil)
			return
		}
		hlog.CtxErrorf(ctx, "streaming video %d failed: %v", id, err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	for k, v := range result.Headers {
		c.Response.Header.Set(k, v)
	}
	c.SetStatusCode(result.StatusCode)
	if result.Body != nil {
		c.SetBodyStream(result.Body, int(result.ContentLength))
	}
}

func (h *Handler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := videoID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}

	err := service.NewVideoDeleteService(ctx, h.Videos, h.Users, h.History, h.Comments, h.Reactions, h.Storage).
		DeleteVideo(id, jwt.UserID(c))
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
	id, ok := videoID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}

	result, err := interservice.NewReactionService(ctx, h.Reactions, h.Comments, h.Videos).
		ToggleVideoReaction(id, jwt.UserID(c), kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func splitParam(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
