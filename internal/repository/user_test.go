package repository

import (
	"context"
	"testing"

	"github.com/adnan275/zync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CRUD(t *testing.T) {
	t.Cleanup(func() { truncateTables(testDB) })

	repo := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		u := &models.User{
			FullName: "Nora Quist",
			Email:    "nora@example.com",
			Password: "hashed",
		}
		err := repo.Create(ctx, u)
		require.NoError(t, err)
		require.NotZero(t, u.ID)

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nora Quist", got.FullName)
		assert.False(t, got.IsOnboarded)
	})

	t.Run("Create duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			FullName: "Other Nora",
			Email:    "nora@example.com",
			Password: "hashed",
		})
		require.Error(t, err)
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("GetByEmail", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nora@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Nora Quist", got.FullName)

		missing, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 987654)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})

	t.Run("Update", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nora@example.com")
		require.NoError(t, err)

		got.Bio = "Language enthusiast"
		got.IsOnboarded = true
		require.NoError(t, repo.Update(ctx, got))

		reloaded, err := repo.GetByID(ctx, got.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.IsOnboarded)
		assert.Equal(t, "Language enthusiast", reloaded.Bio)
	})

	t.Run("List", func(t *testing.T) {
		users, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}
