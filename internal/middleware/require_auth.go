package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth guards routes that need a resolved identity. The API-side
// equivalent of a redirect to login: 401 when JWTAuth left no user_id.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}
