package middleware

import (
	"errors"
	"strings"

	"inventori/internal/apperrors"
	"inventori/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that gates a route group behind a
// valid bearer token. It rejects the request before any handler runs,
// so unauthenticated requests never reach a mutating operation.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied. No token provided.",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied. Invalid token format.",
			})
		}

		user, err := authService.VerifyToken(parts[1])
		if err != nil {
			message := "Access denied. Invalid token."
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				message = appErr.Message
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": message,
			})
		}

		// Store the resolved identity for subsequent handlers.
		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)

		return c.Next()
	}
}
