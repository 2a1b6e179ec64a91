package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/pkg/database"
)

type UserRepo struct {
	d *database.Database
}

func NewUserRepo(d *database.Database) *UserRepo {
	return &UserRepo{d: d}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	if err := r.d.DB().WithContext(ctx).Create(user).Error; err != nil {
		return errors.WithMessage(err, "db.CreateUser failed")
	}
	return nil
}

// FindByID returns (nil, nil) when the user does not exist.
func (r *UserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	err := r.d.DB().WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindUserByID failed")
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.d.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindUserByEmail failed")
	}
	return &user, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.d.DB().WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "db.FindUserByUsername failed")
	}
	return &user, nil
}

// FindByIDs fetches a batch of users keyed by id, for attaching author and
// uploader info without per-row queries.
func (r *UserRepo) FindByIDs(ctx context.Context, userIDs []int64) (map[int64]*model.User, error) {
	result := make(map[int64]*model.User, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var users []*model.User
	if err := r.d.DB().WithContext(ctx).Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, errors.WithMessage(err, "db.FindUsersByIDs failed")
	}
	for _, u := range users {
		result[u.UserId] = u
	}
	return result, nil
}

// ExistsConflict reports whether the username or email is already taken by
// another account. excludeID skips the caller's own row on profile updates.
func (r *UserRepo) ExistsConflict(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	var count int64
	q := r.d.DB().WithContext(ctx).Model(&model.User{})
	switch {
	case username != "" && email != "":
		q = q.Where("username = ? OR email = ?", username, email)
	case username != "":
		q = q.Where("username = ?", username)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		return false, nil
	}
	if excludeID > 0 {
		q = q.Where("user_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "db.UserExistsConflict failed")
	}
	return count > 0, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, userID int64, username, bio string) error {
	updates := map[string]interface{}{
		"username": username,
		"bio":      bio,
	}
	err := r.d.DB().WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).Updates(updates).Error
	if err != nil {
		return errors.WithMessage(err, "db.UpdateUserProfile failed")
	}
	return nil
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	err := r.d.DB().WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).Update("avatar_url", avatarURL).Error
	if err != nil {
		return errors.WithMessage(err, "db.UpdateUserAvatar failed")
	}
	return nil
}
