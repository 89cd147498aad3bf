package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/service"
	apperrors "github.com/spec-kit/supplychain-service/pkg/util"
)

// SupplierHandler exposes CRUD endpoints for vendors.
type SupplierHandler struct {
	suppliers *service.SupplierService
}

// NewSupplierHandler constructs handler.
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: supplierService}
}

// List handles GET /suppliers/.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSupplierResponses(suppliers))
}

// Get handles GET /suppliers/:id.
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	supplier, err := h.suppliers.Get(c.Context(), int64(id))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewSupplierResponse(supplier))
}

// Create handles POST /suppliers/.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	supplier := req.ToDomain(0)
	if err := h.suppliers.Create(c.Context(), actorID(c), supplier); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewSupplierResponse(supplier))
}

// Update handles PUT /suppliers/:id.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	supplier := req.ToDomain(int64(id))
	if err := h.suppliers.Update(c.Context(), actorID(c), supplier); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewSupplierResponse(supplier))
}

// Delete handles DELETE /suppliers/:id.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid id")
	}

	if err := h.suppliers.Delete(c.Context(), actorID(c), int64(id)); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
