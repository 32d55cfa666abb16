package service

import (
	"context"

	"github.com/adnan275/zync/internal/models"
	"github.com/adnan275/zync/internal/repository"
)

const defaultRecommendationLimit = 10

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest sends a friend request from sender to recipient.
func (s *FriendService) SendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, models.NewInvalidTargetError("Cannot send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	alreadyFriends, err := s.friendRepo.IsFriend(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, models.NewAlreadyFriendsError()
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.FriendRequestStatusAccepted {
			return nil, models.NewAlreadyFriendsError()
		}
		return nil, models.NewDuplicateRequestError()
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := s.friendRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, request.ID)
}

// AcceptRequest accepts a pending friend request addressed to userID.
func (s *FriendService) AcceptRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.RecipientID != userID {
		return nil, models.NewForbiddenError("You can only accept friend requests sent to you")
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewInvalidStateError("Friend request is not pending")
	}

	if err := s.friendRepo.Accept(ctx, requestID); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, requestID)
}

// ListFriends returns the user's friends.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// ListIncomingRequests returns pending requests addressed to the user, oldest first.
func (s *FriendService) ListIncomingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.friendRepo.ListIncomingPending(ctx, userID)
}

// ListAcceptedRequests returns requests the user sent that were accepted.
func (s *FriendService) ListAcceptedRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.friendRepo.ListAcceptedBySender(ctx, userID)
}

// RecommendUsers returns onboarded users the user is not yet friends with.
func (s *FriendService) RecommendUsers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > 100 {
		limit = 100
	}
	return s.friendRepo.RecommendUsers(ctx, userID, limit)
}
