package shop

import (
	"sync"
	"time"

	"crypto-arcade/internal/event"
	"crypto-arcade/internal/sched"
)

// Wallet is the balance-replacement surface the shop settles against.
// UpdateBalance runs the supplied arithmetic inside the wallet's own lock,
// so settlements cannot erase a bet resolution racing on another goroutine.
type Wallet interface {
	UpdateBalance(fn func(balance float64) float64) float64
}

// Service simulates the coin shop's two-phase settlement. Buys credit a lot
// only after a delayed "verification"; sells debit up front and the later
// transfer notification changes nothing.
type Service struct {
	wallet        Wallet
	bus           *event.Bus
	verifyDelay   time.Duration
	transferDelay time.Duration

	mu      sync.Mutex
	pending map[string]*sched.Task
}

func New(w Wallet, bus *event.Bus, verifyDelay, transferDelay time.Duration) *Service {
	return &Service{
		wallet:        w,
		bus:           bus,
		verifyDelay:   verifyDelay,
		transferDelay: transferDelay,
		pending:       make(map[string]*sched.Task),
	}
}

// SubmitBuyOrder accepts an uploaded proof reference and leaves the balance
// untouched until verification completes. Verification always succeeds in
// this simulation and cannot be cancelled by the user.
func (s *Service) SubmitBuyOrder(proof string) (Order, error) {
	if proof == "" {
		return Order{}, ErrMissingProof
	}

	order := newOrder(Buy)
	order.Proof = proof

	s.mu.Lock()
	s.pending[order.ID] = sched.After(s.verifyDelay, func() { s.settleBuy(order) })
	s.mu.Unlock()

	return order, nil
}

func (s *Service) settleBuy(order Order) {
	s.mu.Lock()
	delete(s.pending, order.ID)
	s.mu.Unlock()

	s.wallet.UpdateBalance(func(balance float64) float64 {
		return balance + LotSize
	})

	order.State = Settled
	s.bus.Publish(event.EventOrderSettled, &order)
}

// SubmitSellOrder debits the coins immediately; the delayed notification
// only signals that the simulated ETH transfer went out.
func (s *Service) SubmitSellOrder(amount float64) (Order, error) {
	// the funds check and the debit share one wallet critical section
	debited := false
	s.wallet.UpdateBalance(func(balance float64) float64 {
		if balance < amount {
			return balance
		}
		debited = true
		return balance - amount
	})
	if !debited {
		return Order{}, ErrInsufficientCoins
	}

	order := newOrder(Sell)
	order.Amount = amount

	s.mu.Lock()
	s.pending[order.ID] = sched.After(s.transferDelay, func() { s.notifyTransfer(order) })
	s.mu.Unlock()

	return order, nil
}

func (s *Service) notifyTransfer(order Order) {
	s.mu.Lock()
	delete(s.pending, order.ID)
	s.mu.Unlock()

	order.State = Settled
	s.bus.Publish(event.EventTransferComplete, &order)
}

// Close drops all pending settlements.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, task := range s.pending {
		task.Cancel()
		delete(s.pending, id)
	}
}
