package score

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, tracker *Tracker) {

	r.Get("/score", func(c *fiber.Ctx) error {
		return c.JSON(tracker.Snapshot())
	})

	r.Post("/score/reset", func(c *fiber.Ctx) error {
		tracker.Reset()
		return c.JSON(fiber.Map{"status": "reset"})
	})
}
