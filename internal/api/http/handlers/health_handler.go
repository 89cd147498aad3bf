package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/persistence"
)

// HealthHandler reports service liveness and dependency status.
type HealthHandler struct {
	db    *persistence.Postgres
	cache *persistence.Redis
	start time.Time
}

// NewHealthHandler constructs handler.
func NewHealthHandler(db *persistence.Postgres, cache *persistence.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, start: time.Now()}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := http.StatusOK
	checks := fiber.Map{}

	if h.db != nil {
		if err := h.db.PoolHandle().Ping(c.Context()); err != nil {
			checks["postgres"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["postgres"] = "ok"
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "ok"
		}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"uptime": time.Since(h.start).Round(time.Second).String(),
		"checks": checks,
	})
}
