package server

import (
	"github.com/adnan275/zync/internal/models"
	"github.com/adnan275/zync/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultRecommendationLimit = 10

// GetRecommendedUsers handles GET /api/users
//
// Returns onboarded users the caller is not already friends with,
// suitable for populating a "people you may know" list.
func (s *Server) GetRecommendedUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	limit := parseLimit(c, defaultRecommendationLimit)

	users, err := s.friendService.RecommendUsers(c.Context(), userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.Summaries(users))
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName         string `json:"fullName"`
		Bio              string `json:"bio"`
		NativeLanguage   string `json:"nativeLanguage"`
		LearningLanguage string `json:"learningLanguage"`
		Location         string `json:"location"`
		ProfilePic       string `json:"profilePic"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:           userID,
		FullName:         req.FullName,
		Bio:              req.Bio,
		NativeLanguage:   req.NativeLanguage,
		LearningLanguage: req.LearningLanguage,
		Location:         req.Location,
		ProfilePic:       req.ProfilePic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user.Summary())
}
