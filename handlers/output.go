package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-post/errors"
	"yt-post/models"
	"yt-post/services/output"
	"yt-post/validation"
)

type OutputHandler struct {
	service   output.Service
	validator *validation.Validator
}

func NewOutputHandler(service output.Service, validator *validation.Validator) *OutputHandler {
	return &OutputHandler{service: service, validator: validator}
}

// Format handles POST /api/v1/output.
func (h *OutputHandler) Format(c *fiber.Ctx) error {
	const op = "OutputHandler.Format"

	var req models.OutputRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "invalid JSON body")
	}

	if err := h.validator.ValidateOutputRequest(&req); err != nil {
		return err
	}

	result, err := h.service.Format(&req)
	if err != nil {
		return err
	}

	return respond(c, result)
}
