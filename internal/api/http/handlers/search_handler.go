package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/service"
)

// SearchHandler exposes natural-language search over the schema.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchService}
}

// Search handles POST /ai/search/.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	query := strings.TrimSpace(req.QueryText)
	if query == "" {
		return fiber.NewError(http.StatusBadRequest, "query_text required")
	}

	return c.JSON(h.search.Search(c.Context(), actorID(c), query))
}
