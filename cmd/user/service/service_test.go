package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/pkg/database"
)

type fixture struct {
	ctx    context.Context
	users  *db.UserRepo
	subs   *db.SubscriptionRepo
	videos *videodb.VideoRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	d := database.NewWithDB(gdb)
	require.NoError(t, d.AutoMigrate())
	return &fixture{
		ctx:    context.Background(),
		users:  db.NewUserRepo(d),
		subs:   db.NewSubscriptionRepo(d),
		videos: videodb.NewVideoRepo(d),
	}
}

func (f *fixture) register(t *testing.T, name string) *model.User {
	t.Helper()
	u, err := NewCreateUserService(f.ctx, f.users).CreateUser(name, name+"@example.com", "hunter22")
	require.NoError(t, err)
	return u
}
