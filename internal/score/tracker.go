package score

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	"crypto-arcade/internal/event"
	"crypto-arcade/internal/kvstore"
	"crypto-arcade/internal/logger"
	"crypto-arcade/internal/ring"
)

// bestScoreKey matches the storage key the original browser build used, so
// an imported store keeps its record.
const bestScoreKey = "diceGameBestScore"

const historyCap = 10

type Roll struct {
	Dice1 int `json:"dice1"`
	Dice2 int `json:"dice2"`
	Sum   int `json:"sum"`
	Roll  int `json:"roll"`
}

type Summary struct {
	Score     int    `json:"score"`
	Rolls     int    `json:"rolls"`
	BestScore int    `json:"best_score"`
	History   []Roll `json:"history"`
}

// Tracker accumulates the dice session score and keeps the all-time best
// score across restarts through the persistence port.
type Tracker struct {
	store kvstore.Store
	bus   *event.Bus

	mu      sync.Mutex
	score   int
	rolls   int
	best    int
	history *ring.Ring[Roll]
}

func New(store kvstore.Store, bus *event.Bus) *Tracker {
	t := &Tracker{
		store:   store,
		bus:     bus,
		history: ring.New[Roll](historyCap),
	}

	if raw, ok, err := store.Get(bestScoreKey); err == nil && ok {
		if best, err := strconv.Atoi(raw); err == nil {
			t.best = best
		}
	}

	return t
}

func (t *Tracker) RecordRoll(d1, d2 int) {
	t.mu.Lock()
	sum := d1 + d2
	t.score += sum
	t.rolls++
	t.history.Push(Roll{Dice1: d1, Dice2: d2, Sum: sum, Roll: t.rolls})

	newBest := 0
	if t.score > t.best {
		t.best = t.score
		newBest = t.best
		// the in-memory best stays authoritative for this session even if
		// the write fails; the record just won't survive a restart
		if err := t.store.Set(bestScoreKey, strconv.Itoa(t.best)); err != nil {
			logger.Log.Warn("persist best score", zap.Int("best", t.best), zap.Error(err))
		}
	}
	t.mu.Unlock()

	if newBest > 0 {
		t.bus.Publish(event.EventNewBestScore, newBest)
	}
}

// Reset clears the session; the persisted best score is untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.score = 0
	t.rolls = 0
	t.history.Clear()
}

func (t *Tracker) Snapshot() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Summary{
		Score:     t.score,
		Rolls:     t.rolls,
		BestScore: t.best,
		History:   t.history.Recent(),
	}
}
