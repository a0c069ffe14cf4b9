package handlers

import (
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"yt-post/errors"
)

// ErrorHandler is the Fiber error handler. Every failure carries a stable
// kind tag next to the human-readable message; upstream detail stays in the
// logs.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	kind := errors.KindInternal
	message := "Internal Server Error"

	var appErr *errors.AppError
	var fiberErr *fiber.Error
	switch {
	case stderrors.As(err, &appErr):
		code = appErr.Code
		kind = appErr.Kind
		message = appErr.Message
	case stderrors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logrus.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"path":       c.Path(),
		"method":     c.Method(),
		"status":     code,
		"kind":       kind,
		"error":      err,
	}).Error("Request error")

	return c.Status(code).JSON(Response{
		Success:   false,
		Error:     message,
		Kind:      string(kind),
		RequestID: requestID(c),
		Timestamp: time.Now().UTC(),
	})
}
