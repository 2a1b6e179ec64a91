package service

import (
	"context"
	"strings"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	"streamzone/pkg/constants"
	"streamzone/pkg/errno"
)

type UpdateUserService struct {
	ctx   context.Context
	users *db.UserRepo
}

func NewUpdateUserService(ctx context.Context, users *db.UserRepo) *UpdateUserService {
	return &UpdateUserService{ctx: ctx, users: users}
}

// UpdateProfile changes username and/or bio. Nil fields are left untouched.
func (s *UpdateUserService) UpdateProfile(userID int64, username, bio *string) (*model.User, error) {
	user, err := s.users.FindByID(s.ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	if username != nil {
		name := strings.TrimSpace(*username)
		if len(name) < constants.MinUsernameLength || len(name) > constants.MaxUsernameLength {
			return nil, errno.ParamErr.WithMessage("username must be 3-20 characters")
		}
		if !usernamePattern.MatchString(name) {
			return nil, errno.ParamErr.WithMessage("username may only contain letters, numbers and underscores")
		}
		if name != user.Username {
			taken, err := s.users.ExistsConflict(s.ctx, name, "", userID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, errno.ParamErr.WithMessage("username already taken")
			}
		}
		user.Username = name
	}

	if bio != nil {
		b := strings.TrimSpace(*bio)
		if len(b) > constants.MaxBioLength {
			return nil, errno.ParamErr.WithMessage("bio must be at most 500 characters")
		}
		user.Bio = b
	}

	if err := s.users.UpdateProfile(s.ctx, userID, user.Username, user.Bio); err != nil {
		return nil, err
	}
	return user, nil
}
