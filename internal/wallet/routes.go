package wallet

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/wallet/connect", func(c *fiber.Ctx) error {
		service.Connect()
		return c.JSON(fiber.Map{"status": "connecting"})
	})

	r.Get("/wallet", func(c *fiber.Ctx) error {
		return c.JSON(service.Snapshot())
	})
}
