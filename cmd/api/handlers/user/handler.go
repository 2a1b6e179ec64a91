package user

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/user/service"
	"streamzone/pkg/errno"
	"streamzone/pkg/jwt"
)

type Handler struct {
	Users *userdb.UserRepo
	Subs  *userdb.SubscriptionRepo
}

func New(users *userdb.UserRepo, subs *userdb.SubscriptionRepo) *Handler {
	return &Handler{Users: users, Subs: subs}
}

func SendResponse(c *app.RequestContext, err errno.ErrNo, data interface{}) {
	c.JSON(err.StatusCode, utils.H{
		"code":    err.ErrCode,
		"message": err.ErrMsg,
		"data":    data,
	})
}

func channelID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) Subscribe(ctx context.Context, c *app.RequestContext) {
	id, ok := channelID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid user id"), nil)
		return
	}
	state, err := service.NewSubscribeService(ctx, h.Users, h.Subs).Subscribe(jwt.UserID(c), id)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, state)
}

func (h *Handler) Unsubscribe(ctx context.Context, c *app.RequestContext) {
	id, ok := channelID(c)
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("invalid user id"), nil)
		return
	}
	state, err := service.NewSubscribeService(ctx, h.Users, h.Subs).Unsubscribe(jwt.UserID(c), id)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, state)
}
