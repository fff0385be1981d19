package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"blogspace/dto"
)

// NewErrorHandler renders every error escaping a handler as a JSON body
// with a stable shape. Wired into fiber.Config. Unexpected failures are
// logged and answered with a generic message; driver and internal error
// strings never reach the client.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Message: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "internal server error"})
	}
}
