package repository

import (
	"context"
	"errors"

	"github.com/adnan275/zync/internal/cache"
	"github.com/adnan275/zync/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend request and friendship data operations
type FriendRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error)
	ListIncomingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	ListAcceptedBySender(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	IsFriend(ctx context.Context, userID, otherID uint) (bool, error)
	RecommendUsers(ctx context.Context, userID uint, limit int) ([]models.User, error)
	Accept(ctx context.Context, requestID uint) error
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		// The pair key is unique, so a concurrent send for the same pair
		// surfaces here as a constraint violation.
		if isUniqueConstraintError(err) {
			return models.NewDuplicateRequestError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).Preload("Sender").Preload("Recipient").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	var request models.FriendRequest

	// The pair key is direction independent, so one lookup covers both orders
	if err := r.db.WithContext(ctx).
		Where("pair_key = ?", models.FriendPairKey(userID1, userID2)).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No request exists
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) ListIncomingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	if err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("Sender").
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return requests, nil
}

func (r *friendRepository) ListAcceptedBySender(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, models.FriendRequestStatusAccepted).
		Preload("Recipient").
		Order("updated_at ASC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return requests, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	key := cache.FriendsKey(userID)

	err := cache.Aside(ctx, key, &users, cache.FriendsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN user_friends uf ON users.id = uf.friend_id").
			Where("uf.user_id = ?", userID).
			Order("users.id ASC").
			Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *friendRepository) IsFriend(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFriend{}).
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *friendRepository) RecommendUsers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	var users []models.User

	friendIDs := r.db.Model(&models.UserFriend{}).
		Select("friend_id").
		Where("user_id = ?", userID)

	if err := r.db.WithContext(ctx).
		Where("id != ?", userID).
		Where("is_onboarded = ?", true).
		Where("id NOT IN (?)", friendIDs).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return users, nil
}

// Accept transitions a pending request to accepted and creates the symmetric
// friendship rows in one transaction. A request that is no longer pending
// yields a Conflict.
func (r *friendRepository) Accept(ctx context.Context, requestID uint) error {
	var request models.FriendRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Friend request", requestID)
			}
			return models.NewInternalError(err)
		}

		// Guarded update: only one accept can win the pending -> accepted
		// transition, any concurrent accept sees zero rows affected.
		res := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", requestID, models.FriendRequestStatusPending).
			Update("status", models.FriendRequestStatusAccepted)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewConflictError("Friend request is no longer pending")
		}

		links := []models.UserFriend{
			{UserID: request.SenderID, FriendID: request.RecipientID},
			{UserID: request.RecipientID, FriendID: request.SenderID},
		}
		if err := tx.Create(&links).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewAlreadyFriendsError()
			}
			return models.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateFriends(ctx, request.SenderID, request.RecipientID)
	return nil
}
