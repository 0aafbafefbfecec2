package handler

import (
	"context"
	"time"

	"quiz-show/internal/domain"
	"quiz-show/internal/dto"
	"quiz-show/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports liveness. cache may be nil when no verdict cache is configured.
type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if h.cache == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		// grading still works without the cache
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		resp.Cache = "unavailable"
	} else {
		resp.Cache = "ok"
	}
	return c.JSON(resp)
}
