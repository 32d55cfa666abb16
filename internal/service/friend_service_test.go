package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adnan275/zync/internal/models"
)

type friendRepoStub struct {
	createFn               func(context.Context, *models.FriendRequest) error
	getByIDFn              func(context.Context, uint) (*models.FriendRequest, error)
	getBetweenUsersFn      func(context.Context, uint, uint) (*models.FriendRequest, error)
	listIncomingPendingFn  func(context.Context, uint) ([]models.FriendRequest, error)
	listAcceptedBySenderFn func(context.Context, uint) ([]models.FriendRequest, error)
	getFriendsFn           func(context.Context, uint) ([]models.User, error)
	isFriendFn             func(context.Context, uint, uint) (bool, error)
	recommendUsersFn       func(context.Context, uint, int) ([]models.User, error)
	acceptFn               func(context.Context, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, request *models.FriendRequest) error {
	return s.createFn(ctx, request)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) ListIncomingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.listIncomingPendingFn(ctx, userID)
}
func (s *friendRepoStub) ListAcceptedBySender(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.listAcceptedBySenderFn(ctx, userID)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) IsFriend(ctx context.Context, userID, otherID uint) (bool, error) {
	return s.isFriendFn(ctx, userID, otherID)
}
func (s *friendRepoStub) RecommendUsers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.recommendUsersFn(ctx, userID, limit)
}
func (s *friendRepoStub) Accept(ctx context.Context, requestID uint) error {
	return s.acceptFn(ctx, requestID)
}

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:               func(context.Context, *models.FriendRequest) error { return nil },
		getByIDFn:              func(context.Context, uint) (*models.FriendRequest, error) { return &models.FriendRequest{}, nil },
		getBetweenUsersFn:      func(context.Context, uint, uint) (*models.FriendRequest, error) { return nil, nil },
		listIncomingPendingFn:  func(context.Context, uint) ([]models.FriendRequest, error) { return nil, nil },
		listAcceptedBySenderFn: func(context.Context, uint) ([]models.FriendRequest, error) { return nil, nil },
		getFriendsFn:           func(context.Context, uint) ([]models.User, error) { return nil, nil },
		isFriendFn:             func(context.Context, uint, uint) (bool, error) { return false, nil },
		recommendUsersFn:       func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
		acceptFn:               func(context.Context, uint) error { return nil },
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func TestFriendServiceSendRequestSelf(t *testing.T) {
	svc := NewFriendService(noopFriendRepo(), noopUserRepo())
	_, err := svc.SendRequest(context.Background(), 3, 3)
	assertCode(t, err, "INVALID_TARGET")
}

func TestFriendServiceSendRequestRecipientMissing(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", 42)
	}

	svc := NewFriendService(noopFriendRepo(), users)
	_, err := svc.SendRequest(context.Background(), 1, 42)
	assertCode(t, err, "NOT_FOUND")
}

func TestFriendServiceSendRequestAlreadyFriends(t *testing.T) {
	repo := noopFriendRepo()
	repo.isFriendFn = func(context.Context, uint, uint) (bool, error) { return true, nil }

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.SendRequest(context.Background(), 1, 2)
	assertCode(t, err, "ALREADY_FRIENDS")
}

func TestFriendServiceSendRequestDuplicate(t *testing.T) {
	repo := noopFriendRepo()
	repo.getBetweenUsersFn = func(context.Context, uint, uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{ID: 7, SenderID: 2, RecipientID: 1, Status: models.FriendRequestStatusPending}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	// Duplicate in either direction is rejected the same way
	_, err := svc.SendRequest(context.Background(), 1, 2)
	assertCode(t, err, "DUPLICATE_REQUEST")
}

func TestFriendServiceSendRequestCreates(t *testing.T) {
	repo := noopFriendRepo()
	var created *models.FriendRequest
	repo.createFn = func(_ context.Context, r *models.FriendRequest) error {
		r.ID = 11
		created = r
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{ID: id, SenderID: 1, RecipientID: 2, Status: models.FriendRequestStatusPending}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	req, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.Status != models.FriendRequestStatusPending {
		t.Fatalf("expected pending request to be created, got %#v", created)
	}
	if req.ID != 11 {
		t.Fatalf("expected request 11, got %d", req.ID)
	}
}

func TestFriendServiceAcceptForbidden(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{
			ID:          5,
			SenderID:    10,
			RecipientID: 11,
			Status:      models.FriendRequestStatusPending,
		}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.AcceptRequest(context.Background(), 12, 5)
	assertCode(t, err, "FORBIDDEN")
}

func TestFriendServiceAcceptNotPending(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{
			ID:          5,
			SenderID:    10,
			RecipientID: 11,
			Status:      models.FriendRequestStatusAccepted,
		}, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.AcceptRequest(context.Background(), 11, 5)
	assertCode(t, err, "INVALID_STATE")
}

func TestFriendServiceAcceptDelegates(t *testing.T) {
	repo := noopFriendRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.FriendRequest, error) {
		return &models.FriendRequest{ID: id, SenderID: 10, RecipientID: 11, Status: models.FriendRequestStatusPending}, nil
	}
	accepted := false
	repo.acceptFn = func(_ context.Context, id uint) error {
		accepted = true
		return nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	_, err := svc.AcceptRequest(context.Background(), 11, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !accepted {
		t.Fatal("expected repository Accept to run")
	}
}

func TestFriendServiceRecommendDefaultsLimit(t *testing.T) {
	repo := noopFriendRepo()
	var gotLimit int
	repo.recommendUsersFn = func(_ context.Context, _ uint, limit int) ([]models.User, error) {
		gotLimit = limit
		return nil, nil
	}

	svc := NewFriendService(repo, noopUserRepo())
	if _, err := svc.RecommendUsers(context.Background(), 1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != defaultRecommendationLimit {
		t.Fatalf("expected default limit %d, got %d", defaultRecommendationLimit, gotLimit)
	}

	if _, err := svc.RecommendUsers(context.Background(), 1, 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 100 {
		t.Fatalf("expected capped limit 100, got %d", gotLimit)
	}
}
