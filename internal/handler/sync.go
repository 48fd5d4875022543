package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/model"
	"github.com/directly-app/directly/internal/service"
	"github.com/directly-app/directly/internal/youtube"
)

type SyncHandler struct {
	svc *service.SyncService
}

func NewSyncHandler(svc *service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

// Sync handles POST /youtube — resolves the channel's top videos and replaces
// the stored record set with them. Responds with the post-swap set.
func (h *SyncHandler) Sync(c fiber.Ctx) error {
	var req model.SyncRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}
	if req.ChannelURL == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "channelUrl is required")
	}

	videos, err := h.svc.Sync(c.RequestCtx(), req.ChannelURL)
	if err != nil {
		middleware.Metrics.SyncsTotal.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, youtube.ErrInvalidChannelURL):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_URL",
				"Invalid channel URL. Please include the @handle")
		case errors.Is(err, youtube.ErrChannelNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		case errors.Is(err, youtube.ErrMissingAPIKey):
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "CONFIG_MISSING", "Missing YouTube API key")
		case errors.Is(err, youtube.ErrUpstream):
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR", "Failed to fetch channel data")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sync channel")
		}
	}

	middleware.Metrics.SyncsTotal.WithLabelValues("ok").Inc()
	return c.JSON(videos)
}
