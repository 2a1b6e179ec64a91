package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/interaction/infras/redis"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/database"
)

type fixture struct {
	ctx       context.Context
	users     *userdb.UserRepo
	videos    *videodb.VideoRepo
	comments  *db.CommentRepo
	reactions *db.ReactionRepo
	guard     *redis.Guard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	d := database.NewWithDB(gdb)
	require.NoError(t, d.AutoMigrate())
	return &fixture{
		ctx:       context.Background(),
		users:     userdb.NewUserRepo(d),
		videos:    videodb.NewVideoRepo(d),
		comments:  db.NewCommentRepo(d),
		reactions: db.NewReactionRepo(d),
		guard:     redis.NewGuard(nil),
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Username: name, Email: name + "@example.com", Password: "x", Role: "user"}
	require.NoError(t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) admin(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Username: name, Email: name + "@example.com", Password: "x", Role: "admin"}
	require.NoError(t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) video(t *testing.T, uploaderID int64) *model.Video {
	t.Helper()
	v := &model.Video{
		UserId:     uploaderID,
		Title:      "clip",
		VideoType:  "uploaded",
		Filename:   "clip.mp4",
		Category:   "Other",
		Visibility: "public",
	}
	require.NoError(t, f.videos.Create(f.ctx, v))
	return v
}

func (f *fixture) comment(t *testing.T, videoID, userID, parentID int64, content string, at time.Time) *model.Comment {
	t.Helper()
	c := &model.Comment{VideoId: videoID, UserId: userID, ParentId: parentID, Content: content, CreatedAt: at}
	require.NoError(t, f.comments.Create(f.ctx, c))
	return c
}
