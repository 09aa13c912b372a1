package wallet

import (
	"sync"
	"testing"
	"time"

	"crypto-arcade/internal/event"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestConnectAssignsBalance(t *testing.T) {
	s := New(event.NewBus(), time.Millisecond, 1)

	if s.Connected() {
		t.Fatal("wallet connected before Connect")
	}

	s.Connect()
	waitFor(t, s.Connected)

	b := s.Balance()
	if b < 0 || b >= 10 {
		t.Fatalf("initial balance %v outside [0,10)", b)
	}
	if b != round4(b) {
		t.Fatalf("initial balance %v not rounded to 4 places", b)
	}
}

func TestConnectIdempotent(t *testing.T) {
	s := New(event.NewBus(), time.Millisecond, 1)

	s.Connect()
	waitFor(t, s.Connected)
	first := s.Balance()

	// a second connect must not reassign the balance
	s.Connect()
	time.Sleep(20 * time.Millisecond)

	if got := s.Balance(); got != first {
		t.Fatalf("balance changed on repeat connect: %v -> %v", first, got)
	}
}

func TestCreditRounds(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		amount  float64
		balance float64
	}{
		{"simple", 1, 0.01, 1.01},
		{"rounds to four places", 0.1, 0.20004, 0.3},
		{"no upper bound", 9.9999, 1000, 1009.9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(event.NewBus(), 0, 1)
			s.SetBalance(tt.start)
			s.Credit(tt.amount)
			if got := s.Balance(); got != tt.balance {
				t.Fatalf("balance = %v, want %v", got, tt.balance)
			}
		})
	}
}

func TestDebitClampsAtZero(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		amount  float64
		balance float64
	}{
		{"partial", 5, 0.01, 4.99},
		{"exact", 1.5, 1.5, 0},
		{"overdraw clamps", 0.005, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(event.NewBus(), 0, 1)
			s.SetBalance(tt.start)
			s.Debit(tt.amount)
			if got := s.Balance(); got != tt.balance {
				t.Fatalf("balance = %v, want %v", got, tt.balance)
			}
		})
	}
}

func TestDebitNeverNegative(t *testing.T) {
	s := New(event.NewBus(), 0, 1)
	s.SetBalance(0.3)
	for i := 0; i < 50; i++ {
		s.Debit(0.07)
		if s.Balance() < 0 {
			t.Fatalf("balance went negative: %v", s.Balance())
		}
	}
}

func TestConcurrentMutationsSerialized(t *testing.T) {
	s := New(event.NewBus(), 0, 1)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				s.Credit(1)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				s.UpdateBalance(func(b float64) float64 { return b + 1 })
			}
		}()
	}
	wg.Wait()

	if got := s.Balance(); got != 2000 {
		t.Fatalf("balance = %v, want 2000 (lost updates)", got)
	}
}

func TestSellStyleCheckAndDebitAtomic(t *testing.T) {
	// two racing conditional debits of the full balance: exactly one may win
	s := New(event.NewBus(), 0, 1)
	s.SetBalance(1000)

	wins := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			ok := false
			s.UpdateBalance(func(b float64) float64 {
				if b < 1000 {
					return b
				}
				ok = true
				return b - 1000
			})
			wins <- ok
		}()
	}

	won := 0
	for i := 0; i < 2; i++ {
		if <-wins {
			won++
		}
	}
	if won != 1 {
		t.Fatalf("conditional debits won = %d, want exactly 1", won)
	}
	if got := s.Balance(); got != 0 {
		t.Fatalf("balance = %v, want 0", got)
	}
}

func TestCloseCancelsPendingConnect(t *testing.T) {
	s := New(event.NewBus(), 50*time.Millisecond, 1)
	s.Connect()
	s.Close()

	time.Sleep(100 * time.Millisecond)
	if s.Connected() {
		t.Fatal("cancelled connect still completed")
	}
}
