package security

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyGuard rejects requests without the configured key. An empty key
// disables the guard, which is the default for a local simulation.
func APIKeyGuard(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey != "" && c.Get("X-API-Key") != apiKey {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
