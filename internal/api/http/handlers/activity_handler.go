package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/service"
)

// ActivityHandler exposes the audit trail.
type ActivityHandler struct {
	activity *service.ActivityService
}

// NewActivityHandler constructs handler.
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activityService}
}

// List handles GET /activity/.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	logs, err := h.activity.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewActivityResponses(logs))
}

// Create handles POST /activity/. Clients submit their own audit entries;
// the acting user is taken from the bearer token, not the payload.
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Action == "" {
		return fiber.NewError(http.StatusBadRequest, "action required")
	}

	log := &domain.ActivityLog{
		UserID:     actorID(c),
		Action:     req.Action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Details:    req.Details,
	}
	if err := h.activity.Record(c.Context(), log); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ActivityResponse{
		ID:         log.ID,
		UserID:     log.UserID,
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Details:    log.Details,
		Timestamp:  log.Timestamp,
	})
}
