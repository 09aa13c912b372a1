package games

import (
	"sync"
	"time"

	"crypto-arcade/internal/event"
	"crypto-arcade/internal/ring"
	"crypto-arcade/internal/sched"
)

const historyCap = 10

type Wallet interface {
	Connected() bool
	Balance() float64
	Credit(amount float64)
	Debit(amount float64)
}

// Recorder receives every settled dice roll for session scoring.
type Recorder interface {
	RecordRoll(d1, d2 int)
}

// Engine runs one game: it validates a wager against the wallet, schedules
// the delayed resolution and applies the result. At most one bet may be
// unresolved per engine.
type Engine struct {
	rules  Rules
	bet    float64
	delay  time.Duration
	wallet Wallet
	gen    *Generator
	bus    *event.Bus

	recorder Recorder

	mu       sync.Mutex
	history  *ring.Ring[string]
	inFlight bool
	pending  *sched.Task
}

func NewEngine(rules Rules, bet float64, delay time.Duration, w Wallet, gen *Generator, bus *event.Bus) *Engine {
	return &Engine{
		rules:   rules,
		bet:     bet,
		delay:   delay,
		wallet:  w,
		gen:     gen,
		bus:     bus,
		history: ring.New[string](historyCap),
	}
}

// AttachRecorder routes resolved rolls to a score tracker (dice only).
func (e *Engine) AttachRecorder(r Recorder) {
	e.recorder = r
}

func (e *Engine) ID() string   { return e.rules.ID() }
func (e *Engine) Bet() float64 { return e.bet }

// PlaceBet checks preconditions in order (first failure wins) and, on
// acceptance, schedules the resolution after the game's presentation delay.
// The delay is pacing only; it carries no game meaning.
func (e *Engine) PlaceBet(choice string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inFlight {
		return ErrBetInFlight
	}
	if err := e.rules.Validate(choice); err != nil {
		return err
	}
	if !e.wallet.Connected() {
		return ErrWalletNotConnected
	}
	if e.wallet.Balance() < e.bet {
		return ErrInsufficientFunds
	}

	e.inFlight = true
	e.pending = sched.After(e.delay, func() { e.resolve(choice) })
	return nil
}

func (e *Engine) resolve(choice string) {
	e.mu.Lock()
	outcome, win := e.rules.Play(e.gen, e.history.Last(3), choice)
	e.history.Push(outcome.Key)
	e.mu.Unlock()

	if win {
		e.wallet.Credit(e.bet)
	} else {
		e.wallet.Debit(e.bet)
	}

	if e.recorder != nil && outcome.Sum > 0 {
		e.recorder.RecordRoll(outcome.Dice1, outcome.Dice2)
	}

	// cleared only once the wallet reflects the result
	e.mu.Lock()
	e.inFlight = false
	e.pending = nil
	e.mu.Unlock()

	e.bus.Publish(event.EventBetResolved, &Result{
		Game:    e.rules.ID(),
		Win:     win,
		Amount:  e.bet,
		Choice:  choice,
		Outcome: outcome,
	})
}

func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// History returns the recorded outcomes, newest first.
func (e *Engine) History() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Recent()
}

// Close cancels a scheduled resolution so it cannot fire against a torn-down
// game. The wager is simply dropped, matching a page teardown.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending != nil {
		e.pending.Cancel()
		e.pending = nil
	}
	e.inFlight = false
}
