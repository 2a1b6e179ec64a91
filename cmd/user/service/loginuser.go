package service

import (
	"context"
	"strings"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	"streamzone/pkg/errno"
	"streamzone/pkg/utils"
)

type LoginUserService struct {
	ctx   context.Context
	users *db.UserRepo
}

func NewLoginUserService(ctx context.Context, users *db.UserRepo) *LoginUserService {
	return &LoginUserService{ctx: ctx, users: users}
}

// LoginUser checks the credentials and returns the account. The same error
// covers unknown email and wrong password.
func (s *LoginUserService) LoginUser(email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(s.ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationErr.WithMessage("invalid email or password")
	}
	return user, nil
}
