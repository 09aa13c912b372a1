package wallet

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"crypto-arcade/internal/event"
	"crypto-arcade/internal/sched"
)

// Service owns the single simulated ETH balance shared by every game and the
// shop. All mutation goes through Credit, Debit and SetBalance so the
// non-negative, 4-decimal invariants hold everywhere.
type Service struct {
	bus          *event.Bus
	connectDelay time.Duration

	mu         sync.Mutex
	rng        *rand.Rand
	connected  bool
	connecting *sched.Task
	balance    float64
}

type Status struct {
	Connected bool    `json:"connected"`
	Balance   float64 `json:"balance"`
}

func New(bus *event.Bus, connectDelay time.Duration, seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		bus:          bus,
		connectDelay: connectDelay,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Connect simulates wallet pairing: after a fixed delay the wallet comes up
// with a random balance in [0,10). Calling it again while connected or while
// a connect is pending is a no-op.
func (s *Service) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected || s.connecting != nil {
		return
	}

	s.connecting = sched.After(s.connectDelay, func() {
		s.mu.Lock()
		s.connected = true
		s.connecting = nil
		s.balance = round4(s.rng.Float64() * 10)
		balance := s.balance
		s.mu.Unlock()

		s.bus.Publish(event.EventWalletConnected, balance)
	})
}

func (s *Service) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Service) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

func (s *Service) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Connected: s.connected, Balance: s.balance}
}

func (s *Service) Credit(amount float64) {
	s.UpdateBalance(func(b float64) float64 {
		return round4(b + amount)
	})
}

// Debit clamps at zero: a loss larger than the balance drains the wallet and
// the excess is absorbed.
func (s *Service) Debit(amount float64) {
	s.UpdateBalance(func(b float64) float64 {
		return math.Max(0, round4(b-amount))
	})
}

// SetBalance replaces the balance directly, skipping rounding and the clamp.
func (s *Service) SetBalance(value float64) {
	s.UpdateBalance(func(float64) float64 { return value })
}

// UpdateBalance applies fn inside the wallet's critical section, so a
// read-modify-write cannot lose a concurrent credit or debit landing between
// the read and the write. It returns the resulting balance.
func (s *Service) UpdateBalance(fn func(balance float64) float64) float64 {
	s.mu.Lock()
	old := s.balance
	s.balance = fn(s.balance)
	balance := s.balance
	s.mu.Unlock()

	if balance != old {
		s.bus.Publish(event.EventBalanceUpdated, balance)
	}
	return balance
}

// Close drops a pending connect so it cannot fire after teardown.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connecting != nil {
		s.connecting.Cancel()
		s.connecting = nil
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
