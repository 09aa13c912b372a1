package event

const (
	EventWalletConnected  = "wallet.connected"
	EventBalanceUpdated   = "wallet.balance"
	EventBetResolved      = "casino.bet_resolved"
	EventOrderSettled     = "shop.order_settled"
	EventTransferComplete = "shop.transfer_complete"
	EventNewBestScore     = "score.new_best"
)
