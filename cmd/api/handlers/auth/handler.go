package auth

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/user/service"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/errno"
	"streamzone/pkg/jwt"
	"streamzone/pkg/storage"
)

type Handler struct {
	Auth    *jwt.Auth
	Users   *userdb.UserRepo
	Subs    *userdb.SubscriptionRepo
	Videos  *videodb.VideoRepo
	Storage *storage.Manager
}

func New(auth *jwt.Auth, users *userdb.UserRepo, subs *userdb.SubscriptionRepo,
	videos *videodb.VideoRepo, st *storage.Manager) *Handler {
	return &Handler{Auth: auth, Users: users, Subs: subs, Videos: videos, Storage: st}
}

func SendResponse(c *app.RequestContext, err errno.ErrNo, data interface{}) {
	c.JSON(err.StatusCode, utils.H{
		"code":    err.ErrCode,
		"message": err.ErrMsg,
		"data":    data,
	})
}

type RegisterParam struct {
	Username string `json:"username" vd:"len($)>0"`
	Email    string `json:"email" vd:"len($)>0"`
	Password string `json:"password" vd:"len($)>0"`
}

func (h *Handler) Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, err := service.NewCreateUserService(ctx, h.Users).CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	token, _, err := h.Auth.GenerateToken(user.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, utils.H{"user": user, "token": token})
}

type LoginParam struct {
	Email    string `json:"email" vd:"len($)>0"`
	Password string `json:"password" vd:"len($)>0"`
}

func (h *Handler) Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, err := service.NewLoginUserService(ctx, h.Users).LoginUser(req.Email, req.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	token, _, err := h.Auth.GenerateToken(user.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{"user": user, "token": token})
}

func (h *Handler) Me(ctx context.Context, c *app.RequestContext) {
	profile, err := service.NewGetUserInfoService(ctx, h.Users, h.Subs, h.Videos).GetUserInfo(jwt.UserID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

type UpdateProfileParam struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
}

func (h *Handler) UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req UpdateProfileParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, err := service.NewUpdateUserService(ctx, h.Users).UpdateProfile(jwt.UserID(c), req.Username, req.Bio)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func (h *Handler) UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}

	user, err := service.NewUpdateAvatarService(ctx, h.Users, h.Storage).UpdateAvatar(jwt.UserID(c), fh)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
