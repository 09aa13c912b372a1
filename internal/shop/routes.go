package shop

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/shop/buy", func(c *fiber.Ctx) error {
		type Req struct {
			Proof string `json:"proof"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		order, err := service.SubmitBuyOrder(body.Proof)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(order)
	})

	r.Post("/shop/sell", func(c *fiber.Ctx) error {
		type Req struct {
			Amount float64 `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		if body.Amount == 0 {
			body.Amount = LotSize
		}

		order, err := service.SubmitSellOrder(body.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(order)
	})
}
