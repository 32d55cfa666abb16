package server

import (
	"fmt"

	"github.com/adnan275/zync/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCall handles POST /api/calls
//
// Generates a unique call room URL. The room itself is hosted by the
// external call provider, so no server-side state is kept.
func (s *Server) CreateCall(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if s.featureFlags == nil || !s.featureFlags.Enabled("video_calls", userID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Video calls are not enabled for your account"))
	}

	callID := uuid.New().String()

	baseURL := s.config.CallBaseURL
	if baseURL == "" {
		baseURL = "https://zync.app/call"
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"call_id": callID,
		"url":     fmt.Sprintf("%s/%s", baseURL, callID),
	})
}
