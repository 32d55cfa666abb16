package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adnan275/zync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUser(t *testing.T, prefix string, onboarded bool) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	u := &models.User{
		FullName:    fmt.Sprintf("%s %d", prefix, ts),
		Email:       fmt.Sprintf("%s_%d@e.com", prefix, ts),
		Password:    "hashed",
		IsOnboarded: onboarded,
	}
	require.NoError(t, testDB.Create(u).Error)
	return u
}

func TestFriendRepository_RequestLifecycle(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	u1 := makeUser(t, "sender", true)
	u2 := makeUser(t, "recipient", true)

	t.Run("Create and ListIncomingPending", func(t *testing.T) {
		request := &models.FriendRequest{
			SenderID:    u1.ID,
			RecipientID: u2.ID,
			Status:      models.FriendRequestStatusPending,
		}

		err := repo.Create(ctx, request)
		require.NoError(t, err)

		reqs, err := repo.ListIncomingPending(ctx, u2.ID)
		assert.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, u1.ID, reqs[0].SenderID)
		require.NotNil(t, reqs[0].Sender)
		assert.Equal(t, u1.FullName, reqs[0].Sender.FullName)
	})

	t.Run("Duplicate in either direction is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.FriendRequest{SenderID: u1.ID, RecipientID: u2.ID})
		require.Error(t, err)
		assert.Equal(t, models.CodeDuplicateRequest, models.ErrorCode(err))

		// Reversed direction hits the same pair key
		err = repo.Create(ctx, &models.FriendRequest{SenderID: u2.ID, RecipientID: u1.ID})
		require.Error(t, err)
		assert.Equal(t, models.CodeDuplicateRequest, models.ErrorCode(err))
	})

	t.Run("GetBetweenUsers finds the pair in any order", func(t *testing.T) {
		req, err := repo.GetBetweenUsers(ctx, u2.ID, u1.ID)
		require.NoError(t, err)
		require.NotNil(t, req)
		assert.Equal(t, u1.ID, req.SenderID)
	})

	t.Run("Accept creates symmetric friendship", func(t *testing.T) {
		req, err := repo.GetBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)

		err = repo.Accept(ctx, req.ID)
		require.NoError(t, err)

		for _, pair := range [][2]uint{{u1.ID, u2.ID}, {u2.ID, u1.ID}} {
			ok, err := repo.IsFriend(ctx, pair[0], pair[1])
			assert.NoError(t, err)
			assert.True(t, ok)
		}

		friends, err := repo.GetFriends(ctx, u1.ID)
		assert.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, u2.FullName, friends[0].FullName)
	})

	t.Run("Accept twice yields conflict", func(t *testing.T) {
		req, err := repo.GetBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)

		err = repo.Accept(ctx, req.ID)
		require.Error(t, err)
		assert.Equal(t, models.CodeConflict, models.ErrorCode(err))
	})

	t.Run("Accept missing request yields not found", func(t *testing.T) {
		err := repo.Accept(ctx, 999999)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})

	t.Run("ListAcceptedBySender", func(t *testing.T) {
		reqs, err := repo.ListAcceptedBySender(ctx, u1.ID)
		assert.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, u2.ID, reqs[0].RecipientID)
		require.NotNil(t, reqs[0].Recipient)
		assert.Equal(t, u2.FullName, reqs[0].Recipient.FullName)
	})

	t.Run("Incoming queue drained after accept", func(t *testing.T) {
		reqs, err := repo.ListIncomingPending(ctx, u2.ID)
		assert.NoError(t, err)
		assert.Empty(t, reqs)
	})
}

func TestFriendRepository_IncomingOrderedByCreation(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	target := makeUser(t, "target", true)
	first := makeUser(t, "first", true)
	second := makeUser(t, "second", true)

	early := &models.FriendRequest{SenderID: first.ID, RecipientID: target.ID, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, &models.FriendRequest{SenderID: second.ID, RecipientID: target.ID}))

	reqs, err := repo.ListIncomingPending(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, first.ID, reqs[0].SenderID)
	assert.Equal(t, second.ID, reqs[1].SenderID)
}

func TestFriendRepository_RecommendUsers(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	me := makeUser(t, "me", true)
	friend := makeUser(t, "friend", true)
	stranger := makeUser(t, "stranger", true)
	notOnboarded := makeUser(t, "fresh", false)

	req := &models.FriendRequest{SenderID: me.ID, RecipientID: friend.ID}
	require.NoError(t, repo.Create(ctx, req))
	require.NoError(t, repo.Accept(ctx, req.ID))

	recs, err := repo.RecommendUsers(ctx, me.ID, 20)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, stranger.ID, recs[0].ID)

	for _, u := range recs {
		assert.NotEqual(t, me.ID, u.ID)
		assert.NotEqual(t, friend.ID, u.ID)
		assert.NotEqual(t, notOnboarded.ID, u.ID)
	}
}

func TestFriendRepository_RecommendUsersLimit(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	me := makeUser(t, "me", true)
	for i := 0; i < 5; i++ {
		makeUser(t, fmt.Sprintf("other%d", i), true)
	}

	recs, err := repo.RecommendUsers(ctx, me.ID, 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	// Stable ordering by id
	for i := 1; i < len(recs); i++ {
		assert.Less(t, recs[i-1].ID, recs[i].ID)
	}
}

func TestFriendRepository_GetByID(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	u1 := makeUser(t, "a", true)
	u2 := makeUser(t, "b", true)

	req := &models.FriendRequest{SenderID: u1.ID, RecipientID: u2.ID}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestStatusPending, got.Status)
	require.NotNil(t, got.Sender)
	require.NotNil(t, got.Recipient)

	_, err = repo.GetByID(ctx, 42424242)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
