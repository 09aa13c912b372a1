package app

import (
	"fmt"

	"go.uber.org/zap"

	"crypto-arcade/internal/audit"
	"crypto-arcade/internal/event"
	"crypto-arcade/internal/games"
	"crypto-arcade/internal/logger"
	"crypto-arcade/internal/monitoring"
	"crypto-arcade/internal/shop"
	wshub "crypto-arcade/internal/ws"
)

// RegisterConsumers fans core events out to the audit trail, metrics and the
// websocket clients. This is the callback surface the presentation layer
// listens on.
func RegisterConsumers(bus *event.Bus, auditService *audit.Service, hub *wshub.Hub) {

	bus.Subscribe(event.EventWalletConnected, func(payload interface{}) {
		balance := payload.(float64)
		logger.Log.Info("wallet connected", zap.Float64("balance", balance))
		hub.BroadcastJSON(event.EventWalletConnected, balance)
	})

	bus.Subscribe(event.EventBalanceUpdated, func(payload interface{}) {
		monitoring.BalanceUpdates.Inc()
		hub.BroadcastJSON(event.EventBalanceUpdated, payload)
	})

	bus.Subscribe(event.EventBetResolved, func(payload interface{}) {
		res := payload.(*games.Result)

		result := "loss"
		if res.Win {
			result = "win"
		}
		monitoring.BetsResolved.WithLabelValues(res.Game, result).Inc()
		auditService.Log("bet_resolved", fmt.Sprintf("game=%s result=%s amount=%.4f", res.Game, result, res.Amount))
		logger.Log.Info("bet resolved",
			zap.String("game", res.Game),
			zap.Bool("win", res.Win),
			zap.Float64("amount", res.Amount),
		)

		hub.BroadcastJSON(event.EventBetResolved, res)
	})

	bus.Subscribe(event.EventOrderSettled, func(payload interface{}) {
		order := payload.(*shop.Order)
		monitoring.OrdersSettled.WithLabelValues(string(order.Kind)).Inc()
		auditService.Log("order_settled", fmt.Sprintf("id=%s kind=%s", order.ID, order.Kind))
		hub.BroadcastJSON(event.EventOrderSettled, order)
	})

	bus.Subscribe(event.EventTransferComplete, func(payload interface{}) {
		order := payload.(*shop.Order)
		monitoring.OrdersSettled.WithLabelValues(string(order.Kind)).Inc()
		auditService.Log("transfer_complete", fmt.Sprintf("id=%s amount=%.0f", order.ID, order.Amount))
		hub.BroadcastJSON(event.EventTransferComplete, order)
	})

	bus.Subscribe(event.EventNewBestScore, func(payload interface{}) {
		hub.BroadcastJSON(event.EventNewBestScore, payload)
	})
}
