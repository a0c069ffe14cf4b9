package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-post/errors"
	"yt-post/models"
	"yt-post/services/post"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Generate handles POST /api/v1/generate-post.
func (h *PostHandler) Generate(c *fiber.Ctx) error {
	const op = "PostHandler.Generate"

	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "invalid JSON body")
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return err
	}

	return respond(c, result)
}
