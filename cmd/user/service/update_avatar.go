package service

import (
	"context"
	"mime/multipart"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/storage"
	"streamzone/pkg/utils"
)

type UpdateAvatarService struct {
	ctx     context.Context
	users   *db.UserRepo
	storage *storage.Manager
}

func NewUpdateAvatarService(ctx context.Context, users *db.UserRepo, st *storage.Manager) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx, users: users, storage: st}
}

// UpdateAvatar resizes the upload to a square avatar, stores it and replaces
// the previous file.
func (s *UpdateAvatarService) UpdateAvatar(userID int64, fh *multipart.FileHeader) (*model.User, error) {
	user, err := s.users.FindByID(s.ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	switch strings.ToLower(path.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return nil, errno.ParamErr.WithMessage("avatar must be a jpg, png or gif image")
	}

	file, err := fh.Open()
	if err != nil {
		return nil, errors.WithMessage(err, "open avatar upload failed")
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errno.ParamErr.WithMessage("could not decode image")
	}
	avatar := imaging.Fill(img, constants.AvatarSize, constants.AvatarSize, imaging.Center, imaging.Lanczos)

	name := utils.RandomFilename("avatar", fh.Filename)
	if err := imaging.Save(avatar, s.storage.ImagePath(name)); err != nil {
		return nil, errors.WithMessage(err, "save avatar failed")
	}

	if old := strings.TrimPrefix(user.AvatarUrl, "/uploads/images/"); old != "" && old != user.AvatarUrl {
		_ = s.storage.RemoveImage(old)
	}

	user.AvatarUrl = "/uploads/images/" + name
	if err := s.users.UpdateAvatar(s.ctx, userID, user.AvatarUrl); err != nil {
		return nil, err
	}
	return user, nil
}
