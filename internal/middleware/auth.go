package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"orderbridge/internal/utils"
)

// Auth validates the bearer token and stores the claims on the request
// context for handlers.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "missing authorization header", nil)
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid authorization header", nil)
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired token", err)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by Auth.
func CurrentUserID(c *fiber.Ctx) int {
	if id, ok := c.Locals("user_id").(int); ok {
		return id
	}
	return 0
}
