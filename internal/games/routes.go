package games

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"crypto-arcade/internal/monitoring"
)

func RegisterRoutes(r fiber.Router, engines map[string]*Engine) {

	r.Get("/games", func(c *fiber.Ctx) error {
		catalog := make([]fiber.Map, 0, len(engines))
		for id, e := range engines {
			catalog = append(catalog, fiber.Map{"game": id, "bet": e.Bet()})
		}
		return c.JSON(catalog)
	})

	r.Post("/games/:id/bet", func(c *fiber.Ctx) error {
		type Req struct {
			Choice string `json:"choice"`
		}

		engine, ok := engines[c.Params("id")]
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": ErrUnknownGame.Error()})
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		if err := engine.PlaceBet(body.Choice); err != nil {
			monitoring.BetsRejected.WithLabelValues(rejectReason(err)).Inc()
			status := 400
			if errors.Is(err, ErrBetInFlight) {
				status = 409
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{"status": "pending"})
	})

	r.Get("/games/:id/history", func(c *fiber.Ctx) error {
		engine, ok := engines[c.Params("id")]
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": ErrUnknownGame.Error()})
		}
		return c.JSON(fiber.Map{"history": engine.History()})
	})
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrBetInFlight):
		return "in_flight"
	case errors.Is(err, ErrWalletNotConnected):
		return "wallet_not_connected"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrInvalidChoice):
		return "invalid_choice"
	default:
		return "other"
	}
}
