package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/model"
	"github.com/directly-app/directly/internal/service"
)

type BioHandler struct {
	svc *service.BioService
}

func NewBioHandler(svc *service.BioService) *BioHandler {
	return &BioHandler{svc: svc}
}

// Generate handles POST /bio — writes a short creative bio from the given
// titles, defaulting to the titles of the stored records.
func (h *BioHandler) Generate(c fiber.Ctx) error {
	var req model.BioRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		}
	}

	bio, err := h.svc.Generate(c.RequestCtx(), req.Titles)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR", "Failed to generate bio")
	}
	return c.JSON(model.BioResponse{Bio: bio})
}
