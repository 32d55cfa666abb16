package repository

import (
	"context"
	"testing"

	"github.com/adnan275/zync/internal/cache"
	"github.com/adnan275/zync/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFriendCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestFriendRepository_GetFriendsCached(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })
	mr := setupFriendCache(t)

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	u1 := makeUser(t, "alice", true)
	u2 := makeUser(t, "bob", true)

	req := &models.FriendRequest{SenderID: u1.ID, RecipientID: u2.ID}
	require.NoError(t, repo.Create(ctx, req))
	require.NoError(t, repo.Accept(ctx, req.ID))

	friends, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.True(t, mr.Exists(cache.FriendsKey(u1.ID)))

	// A cached list is served without touching the database
	require.NoError(t, testDB.Exec("DELETE FROM user_friends").Error)
	cached, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, u2.ID, cached[0].ID)
}

func TestFriendRepository_AcceptInvalidatesFriendsCache(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })
	mr := setupFriendCache(t)

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	u1 := makeUser(t, "carol", true)
	u2 := makeUser(t, "dave", true)
	u3 := makeUser(t, "erin", true)

	first := &models.FriendRequest{SenderID: u1.ID, RecipientID: u2.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Accept(ctx, first.ID))

	// Warm both sides of the next link
	_, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	_, err = repo.GetFriends(ctx, u3.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.FriendsKey(u1.ID)))
	require.True(t, mr.Exists(cache.FriendsKey(u3.ID)))

	second := &models.FriendRequest{SenderID: u3.ID, RecipientID: u1.ID}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Accept(ctx, second.ID))

	assert.False(t, mr.Exists(cache.FriendsKey(u1.ID)))
	assert.False(t, mr.Exists(cache.FriendsKey(u3.ID)))

	friends, err := repo.GetFriends(ctx, u1.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 2)
}
