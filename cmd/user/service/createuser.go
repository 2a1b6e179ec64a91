package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
	"streamzone/pkg/utils"
)

type CreateUserService struct {
	ctx   context.Context
	users *db.UserRepo
}

func NewCreateUserService(ctx context.Context, users *db.UserRepo) *CreateUserService {
	return &CreateUserService{ctx: ctx, users: users}
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func (s *CreateUserService) CreateUser(username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength {
		return nil, errno.ParamErr.WithMessage("username must be 3-20 characters")
	}
	if !usernamePattern.MatchString(username) {
		return nil, errno.ParamErr.WithMessage("username may only contain letters, numbers and underscores")
	}
	if !emailPattern.MatchString(email) {
		return nil, errno.ParamErr.WithMessage("invalid email address")
	}
	if len(password) < constants.MinPasswordLength {
		return nil, errno.ParamErr.WithMessage("password must be at least 6 characters")
	}

	taken, err := s.users.ExistsConflict(s.ctx, username, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errno.ParamErr.WithMessage("username or email already registered")
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "hash password failed")
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     constants.RoleUser,
	}
	if err := s.users.Create(s.ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
