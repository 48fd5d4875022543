package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/model"
	"github.com/directly-app/directly/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	videos, err := h.svc.List(c.RequestCtx())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}
	return c.JSON(videos)
}

// Create handles POST /videos
func (h *VideoHandler) Create(c fiber.Ctx) error {
	var in model.VideoInput
	if err := c.Bind().JSON(&in); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	if errMsg := middleware.ValidateVideoInput(&in); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	video, err := h.svc.Create(c.RequestCtx(), in)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create video")
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Delete handles DELETE /videos?id=X
// Deleting an id that does not exist still reports success.
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateRecordID(fiber.Query[string](c, "id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.RequestCtx(), id); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete video")
	}
	return c.JSON(fiber.Map{"success": true})
}
