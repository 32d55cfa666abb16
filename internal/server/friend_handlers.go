package server

import (
	"time"

	"github.com/adnan275/zync/internal/middleware"
	"github.com/adnan275/zync/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friend-requests
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		RecipientID uint `json:"recipientId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("recipientId is required"))
	}

	request, err := s.friendService.SendRequest(ctx, userID, req.RecipientID)
	if err != nil {
		middleware.FriendRequests.WithLabelValues("send", models.ErrorCode(err)).Inc()
		return respondServiceError(c, err)
	}
	middleware.FriendRequests.WithLabelValues("send", "ok").Inc()

	// Notify the recipient so their UI updates immediately.
	s.publishUserEvent(request.RecipientID, EventFriendRequestReceived, map[string]interface{}{
		"request_id": request.ID,
		"from_user":  userSummaryPayload(request.Sender),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetFriendRequests handles GET /api/friend-requests
//
// Incoming are pending requests addressed to the caller; accepted are the
// caller's outgoing requests that the other side accepted, used to render
// "new connections" notifications.
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	incoming, err := s.friendService.ListIncomingRequests(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	accepted, err := s.friendService.ListAcceptedRequests(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"incoming": incoming,
		"accepted": accepted,
	})
}

// AcceptFriendRequest handles PUT /api/friend-requests/:id/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.AcceptRequest(ctx, userID, requestID)
	if err != nil {
		middleware.FriendRequests.WithLabelValues("accept", models.ErrorCode(err)).Inc()
		return respondServiceError(c, err)
	}
	middleware.FriendRequests.WithLabelValues("accept", "ok").Inc()

	// Tell the original sender their request was accepted.
	s.publishUserEvent(request.SenderID, EventFriendRequestAccepted, map[string]interface{}{
		"request_id":  request.ID,
		"friend_user": userSummaryPayload(request.Recipient),
		"accepted_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.JSON(request)
}

// GetFriends handles GET /api/users/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.ListFriends(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.Summaries(friends))
}
