package service

import (
	"context"
	"strings"

	"github.com/adnan275/zync/internal/models"
	"github.com/adnan275/zync/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

// OnboardingInput carries the profile fields required to complete onboarding.
// ProfilePic is optional; the signup-assigned avatar is kept when empty.
type OnboardingInput struct {
	UserID           uint
	FullName         string
	Bio              string
	NativeLanguage   string
	LearningLanguage string
	Location         string
	ProfilePic       string
}

type UpdateProfileInput struct {
	UserID           uint
	FullName         string
	Bio              string
	NativeLanguage   string
	LearningLanguage string
	Location         string
	ProfilePic       string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CompleteOnboarding fills the user's profile and flips the onboarded flag.
// All fields are required; the missing ones are named in the error.
func (s *UserService) CompleteOnboarding(ctx context.Context, in OnboardingInput) (*models.User, error) {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"fullName", in.FullName},
		{"bio", in.Bio},
		{"nativeLanguage", in.NativeLanguage},
		{"learningLanguage", in.LearningLanguage},
		{"location", in.Location},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, models.NewValidationError("All fields are required: " + strings.Join(missing, ", "))
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.FullName = in.FullName
	user.Bio = in.Bio
	user.NativeLanguage = in.NativeLanguage
	user.LearningLanguage = in.LearningLanguage
	user.Location = in.Location
	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
	}
	user.IsOnboarded = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxNameLen = 120

	if in.FullName != "" {
		if len(in.FullName) > maxNameLen {
			return nil, models.NewValidationError("Full name too long (max 120 characters)")
		}
		user.FullName = in.FullName
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.NativeLanguage != "" {
		user.NativeLanguage = in.NativeLanguage
	}
	if in.LearningLanguage != "" {
		user.LearningLanguage = in.LearningLanguage
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// MarkOnboarded force-completes onboarding for the user with the given email,
// filling empty bio, native language, and location with neutral defaults.
// The learning language is left untouched. Used by the markonboarded admin
// command.
func (s *UserService) MarkOnboarded(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", 0)
	}

	if user.Bio == "" {
		user.Bio = "Language enthusiast"
	}
	if user.NativeLanguage == "" {
		user.NativeLanguage = "english"
	}
	if user.Location == "" {
		user.Location = "Global"
	}
	user.IsOnboarded = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
