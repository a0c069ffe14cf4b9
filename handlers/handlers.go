package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler is the liveness probe.
func HealthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
