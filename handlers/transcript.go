package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-post/errors"
	"yt-post/models"
	"yt-post/services/transcript"
)

type TranscriptHandler struct {
	service transcript.Service
}

func NewTranscriptHandler(service transcript.Service) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// Fetch handles POST /api/v1/transcript. Unavailable transcripts are a
// successful response with the error field populated, so callers can branch
// without treating them as transport failures.
func (h *TranscriptHandler) Fetch(c *fiber.Ctx) error {
	const op = "TranscriptHandler.Fetch"

	var req models.TranscriptRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "invalid JSON body")
	}

	result, err := h.service.Fetch(c.Context(), &req)
	if err != nil {
		return err
	}

	return respond(c, result)
}
