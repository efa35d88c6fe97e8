package handler

import (
	"net/http"

	"ecommerce-api-client/internal/core/cache"
	"ecommerce-api-client/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports whether the gateway and its submission store are up.
type HealthHandler struct {
	cache cache.Cache
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(c cache.Cache) *HealthHandler {
	return &HealthHandler{
		cache: c,
	}
}

// Health handles GET /health.
// @Summary Health check
// @Description Reports gateway health, including the submission store connection.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.cache.Ping(c.Context()); err != nil {
		logger.Get().Error("Health check failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
