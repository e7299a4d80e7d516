package middleware

import (
	"log"
	"strings"

	"hrms/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that verifies the bearer token and
// resolves the authenticated user. Token validity alone is not enough: a
// token whose subject has since been deleted is rejected too.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Not authorized, no token provided",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Not authorized, no token provided",
			})
		}

		tokenString := parts[1]

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Not authorized, token failed",
			})
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Not authorized, user not found",
			})
		}

		// Never carry the password hash downstream.
		user.Password = ""
		c.Locals("user", user)
		c.Locals("user_id", user.ID)

		return c.Next()
	}
}
