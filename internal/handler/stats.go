package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/service"
)

type StatsHandler struct {
	svc *service.VideoService
}

func NewStatsHandler(svc *service.VideoService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.RequestCtx())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}
	return c.JSON(stats)
}
