package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFeedPublicOnly(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	f.uploaded(t, alice.UserId, "public clip", "public")
	f.uploaded(t, alice.UserId, "hidden clip", "private")
	f.uploaded(t, alice.UserId, "unlisted clip", "unlisted")

	result, err := f.listService().ListFeed(FeedParams{})
	require.NoError(t, err)
	require.Len(t, result.Videos, 1)
	assert.Equal(t, "public clip", result.Videos[0].Title)
	assert.Equal(t, int64(1), result.Total)
}

func TestListFeedPagination(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	for i := 0; i < 5; i++ {
		f.uploaded(t, alice.UserId, "clip", "public")
	}

	result, err := f.listService().ListFeed(FeedParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Videos, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)

	last, err := f.listService().ListFeed(FeedParams{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last.Videos, 1)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrev)
}

func TestListFeedFilters(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	bob := f.user(t, "bob", "user")
	f.uploaded(t, alice.UserId, "guitar lesson", "public")
	f.external(t, bob.UserId, "music video")

	byCategory, err := f.listService().ListFeed(FeedParams{Category: "Music"})
	require.NoError(t, err)
	require.Len(t, byCategory.Videos, 1)
	assert.Equal(t, "music video", byCategory.Videos[0].Title)

	bySearch, err := f.listService().ListFeed(FeedParams{Search: "guitar"})
	require.NoError(t, err)
	require.Len(t, bySearch.Videos, 1)
	assert.Equal(t, "guitar lesson", bySearch.Videos[0].Title)

	byUploader, err := f.listService().ListFeed(FeedParams{Uploader: "bob"})
	require.NoError(t, err)
	require.Len(t, byUploader.Videos, 1)
	assert.Equal(t, "bob", byUploader.Videos[0].Uploader.Username)

	// unknown uploader gives an empty page, not an error
	empty, err := f.listService().ListFeed(FeedParams{Uploader: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, empty.Videos)
	assert.Equal(t, int64(0), empty.Total)
}

func TestListOwnCapsLimit(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	for i := 0; i < 51; i++ {
		f.uploaded(t, alice.UserId, "clip", "private")
	}

	result, err := f.listService().ListOwn(alice.UserId, 1, 1000)
	require.NoError(t, err)
	assert.Len(t, result.Videos, 50)
	assert.Equal(t, int64(51), result.Total)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
}

func TestListOwnIncludesPrivate(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "user")
	bob := f.user(t, "bob", "user")
	f.uploaded(t, alice.UserId, "mine public", "public")
	f.uploaded(t, alice.UserId, "mine private", "private")
	f.uploaded(t, bob.UserId, "not mine", "public")

	result, err := f.listService().ListOwn(alice.UserId, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Videos, 2)
	for _, v := range result.Videos {
		assert.Equal(t, alice.UserId, v.UserId)
	}
}
