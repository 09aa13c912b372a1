package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_bets_resolved_total",
			Help: "Resolved bets by game and result",
		},
		[]string{"game", "result"},
	)

	BetsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_bets_rejected_total",
			Help: "Rejected bets by reason",
		},
		[]string{"reason"},
	)

	OrdersSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_orders_settled_total",
			Help: "Settled shop orders by kind",
		},
		[]string{"kind"},
	)

	BalanceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arcade_wallet_balance_updates_total",
			Help: "Total wallet balance updates",
		},
	)
)

func Init() {
	prometheus.MustRegister(BetsResolved)
	prometheus.MustRegister(BetsRejected)
	prometheus.MustRegister(OrdersSettled)
	prometheus.MustRegister(BalanceUpdates)
}
