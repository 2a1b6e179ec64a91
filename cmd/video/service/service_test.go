package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	interdb "streamzone/cmd/interaction/dal/db"
	"streamzone/cmd/model"
	userdb "streamzone/cmd/user/dal/db"
	"streamzone/cmd/video/dal/db"
	"streamzone/pkg/database"
	"streamzone/pkg/storage"
)

func TestMain(m *testing.M) {
	// ffmpeg is not installed on test machines
	thumbnailer = func(videoPath, thumbPath string) error {
		return errors.New("ffmpeg not available")
	}
	os.Exit(m.Run())
}

type fixture struct {
	ctx       context.Context
	users     *userdb.UserRepo
	subs      *userdb.SubscriptionRepo
	history   *userdb.WatchHistoryRepo
	videos    *db.VideoRepo
	comments  *interdb.CommentRepo
	reactions *interdb.ReactionRepo
	storage   *storage.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	d := database.NewWithDB(gdb)
	require.NoError(t, d.AutoMigrate())

	base := t.TempDir()
	st, err := storage.New(base+"/videos", base+"/images", true, 10, 5)
	require.NoError(t, err)

	return &fixture{
		ctx:       context.Background(),
		users:     userdb.NewUserRepo(d),
		subs:      userdb.NewSubscriptionRepo(d),
		history:   userdb.NewWatchHistoryRepo(d),
		videos:    db.NewVideoRepo(d),
		comments:  interdb.NewCommentRepo(d),
		reactions: interdb.NewReactionRepo(d),
		storage:   st,
	}
}

func (f *fixture) user(t *testing.T, name, role string) *model.User {
	t.Helper()
	u := &model.User{Username: name, Email: name + "@example.com", Password: "x", Role: role}
	require.NoError(t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) uploaded(t *testing.T, uploaderID int64, title, visibility string) *model.Video {
	t.Helper()
	v := &model.Video{
		UserId:     uploaderID,
		Title:      title,
		VideoType:  "uploaded",
		Filename:   "clip.mp4",
		Category:   "Other",
		Visibility: visibility,
	}
	require.NoError(t, f.videos.Create(f.ctx, v))
	return v
}

func (f *fixture) external(t *testing.T, uploaderID int64, title string) *model.Video {
	t.Helper()
	v := &model.Video{
		UserId:     uploaderID,
		Title:      title,
		VideoType:  "external",
		ExternalId: "dQw4w9WgXcQ",
		VideoUrl:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Category:   "Music",
		Visibility: "public",
	}
	require.NoError(t, f.videos.Create(f.ctx, v))
	return v
}

func (f *fixture) infoService() *VideoInfoService {
	return NewVideoInfoService(f.ctx, f.videos, f.users, f.subs, f.history, f.reactions, f.comments)
}

func (f *fixture) listService() *VideoListService {
	return NewVideoListService(f.ctx, f.videos, f.users, f.reactions, f.comments)
}
