package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-post/errors"
	"yt-post/models"
	"yt-post/services/summary"
)

type SummaryHandler struct {
	service summary.Service
}

func NewSummaryHandler(service summary.Service) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Generate handles POST /api/v1/summarize.
func (h *SummaryHandler) Generate(c *fiber.Ctx) error {
	const op = "SummaryHandler.Generate"

	var req models.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "invalid JSON body")
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return err
	}

	return respond(c, result)
}
