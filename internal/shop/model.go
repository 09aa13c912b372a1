package shop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LotSize is the fixed number of coins credited per verified buy order.
const LotSize = 1000

type Kind string

const (
	Buy  Kind = "buy"
	Sell Kind = "sell"
)

type State string

const (
	Pending State = "pending"
	Settled State = "settled"
)

var (
	ErrMissingProof      = errors.New("missing payment proof")
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// Order transitions Pending to Settled, forward only, and is discarded once
// settled; there is no order history.
type Order struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"kind"`
	State  State   `json:"state"`
	Proof  string  `json:"proof,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Time   int64   `json:"time"`
}

func newOrder(kind Kind) Order {
	return Order{
		ID:    uuid.New().String(),
		Kind:  kind,
		State: Pending,
		Time:  time.Now().Unix(),
	}
}
