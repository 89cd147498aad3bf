package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/auth"
	"github.com/spec-kit/supplychain-service/internal/service"
	apperrors "github.com/spec-kit/supplychain-service/pkg/util"
)

// InventoryHandler exposes CRUD endpoints for stocked products.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventoryService}
}

// List handles GET /inventory/.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.inventory.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInventoryResponses(items))
}

// Get handles GET /inventory/:id.
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.inventory.Get(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewInventoryResponse(item))
}

// Create handles POST /inventory/.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductName == "" {
		return fiber.NewError(http.StatusBadRequest, "product_name required")
	}

	item := req.ToDomain(0)
	if err := h.inventory.Create(c.Context(), actorID(c), item); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewInventoryResponse(item))
}

// Update handles PUT /inventory/:id.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	var req dto.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := req.ToDomain(int64(id))
	if err := h.inventory.Update(c.Context(), actorID(c), item); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewInventoryResponse(item))
}

// Delete handles DELETE /inventory/:id.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	if err := h.inventory.Delete(c.Context(), actorID(c), int64(id)); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// actorID returns the authenticated user's id, or zero when the route is
// reachable without auth.
func actorID(c *fiber.Ctx) int64 {
	if user, ok := auth.UserFromContext(c); ok {
		return user.ID
	}
	return 0
}
