package games

import "errors"

var (
	ErrBetInFlight        = errors.New("bet already in flight")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidChoice      = errors.New("invalid choice")
	ErrUnknownGame        = errors.New("unknown game")
)

// Result is published on the bus after a bet resolves. Amount is always the
// wagered amount, even when the losing debit was clamped by an empty wallet.
type Result struct {
	Game    string  `json:"game"`
	Win     bool    `json:"win"`
	Amount  float64 `json:"amount"`
	Choice  string  `json:"choice"`
	Outcome Outcome `json:"outcome"`
}
