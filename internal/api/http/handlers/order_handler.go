package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/service"
	apperrors "github.com/spec-kit/supplychain-service/pkg/util"
)

// OrderHandler exposes endpoints for purchase orders.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orderService}
}

// List handles GET /orders/.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponses(orders))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.Get(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// Create handles POST /orders/.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.SupplierID == 0 {
		return fiber.NewError(http.StatusBadRequest, "supplier_id required")
	}

	order := req.ToDomain()
	if err := h.orders.Create(c.Context(), actorID(c), order); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.orders.Update(c.Context(), actorID(c), int64(id), req.Status, req.SupplierID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}
