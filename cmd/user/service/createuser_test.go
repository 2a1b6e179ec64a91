package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamzone/pkg/errno"
)

func TestCreateUser(t *testing.T) {
	f := newFixture(t)

	user, err := NewCreateUserService(f.ctx, f.users).CreateUser("alice", "Alice@Example.COM", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, user.UserId)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "hunter22", user.Password)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice")

	svc := NewCreateUserService(f.ctx, f.users)

	_, err := svc.CreateUser("alice", "other@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.CreateUser("other", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewCreateUserService(f.ctx, f.users)

	cases := []struct{ username, email, password string }{
		{"ab", "a@b.com", "hunter22"},                      // too short
		{"way_too_long_username_here", "a@b.com", "hunter22"},
		{"bad name!", "a@b.com", "hunter22"},               // invalid chars
		{"alice", "not-an-email", "hunter22"},
		{"alice", "a@b.com", "short"},
	}
	for _, c := range cases {
		_, err := svc.CreateUser(c.username, c.email, c.password)
		require.Error(t, err, c.username)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	}
}

func TestLoginUser(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice")

	svc := NewLoginUserService(f.ctx, f.users)

	user, err := svc.LoginUser("ALICE@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.LoginUser("alice@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.LoginUser("nobody@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationErrCode), errno.ConvertErr(err).ErrCode)
}
