package score

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"crypto-arcade/internal/event"
	"crypto-arcade/internal/kvstore"
	"crypto-arcade/internal/logger"
)

// brokenStore reads fine but rejects every write.
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, nil }

func (brokenStore) Set(string, string) error { return errors.New("disk full") }

func TestRecordRollAccumulates(t *testing.T) {
	tr := New(kvstore.NewMemory(), event.NewBus())

	tr.RecordRoll(3, 4)
	tr.RecordRoll(6, 6)

	s := tr.Snapshot()
	if s.Score != 19 {
		t.Fatalf("score = %d, want 19", s.Score)
	}
	if s.Rolls != 2 {
		t.Fatalf("rolls = %d, want 2", s.Rolls)
	}
	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}
	// newest first
	if s.History[0].Sum != 12 || s.History[0].Roll != 2 {
		t.Fatalf("newest roll = %+v, want sum 12 roll 2", s.History[0])
	}
}

func TestHistoryTruncatedToTen(t *testing.T) {
	tr := New(kvstore.NewMemory(), event.NewBus())

	for i := 0; i < 13; i++ {
		tr.RecordRoll(1, 1)
	}

	s := tr.Snapshot()
	if len(s.History) != 10 {
		t.Fatalf("history length = %d, want 10", len(s.History))
	}
	if s.History[0].Roll != 13 {
		t.Fatalf("newest roll index = %d, want 13", s.History[0].Roll)
	}
}

func TestResetKeepsBestScore(t *testing.T) {
	store := kvstore.NewMemory()
	tr := New(store, event.NewBus())

	tr.RecordRoll(6, 6)
	tr.RecordRoll(5, 5)
	if best := tr.Snapshot().BestScore; best != 22 {
		t.Fatalf("best = %d, want 22", best)
	}

	tr.Reset()

	s := tr.Snapshot()
	if s.Score != 0 || s.Rolls != 0 || len(s.History) != 0 {
		t.Fatalf("session not cleared: %+v", s)
	}
	if s.BestScore != 22 {
		t.Fatalf("best after reset = %d, want 22", s.BestScore)
	}
}

func TestBestScoreMonotonic(t *testing.T) {
	store := kvstore.NewMemory()
	tr := New(store, event.NewBus())

	tr.RecordRoll(6, 6) // best 12
	tr.Reset()
	tr.RecordRoll(2, 3) // session 5, best stays 12

	if best := tr.Snapshot().BestScore; best != 12 {
		t.Fatalf("best = %d, want 12", best)
	}

	tr.RecordRoll(4, 4) // session 13 > 12
	if best := tr.Snapshot().BestScore; best != 13 {
		t.Fatalf("best = %d, want 13", best)
	}
}

func TestBestScoreSurvivesRestart(t *testing.T) {
	store := kvstore.NewMemory()

	tr := New(store, event.NewBus())
	tr.RecordRoll(6, 5)

	// a fresh tracker against the same store sees the record
	tr2 := New(store, event.NewBus())
	if best := tr2.Snapshot().BestScore; best != 11 {
		t.Fatalf("best after restart = %d, want 11", best)
	}
}

func TestPersistFailureLoggedAndSessionBestKept(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	tr := New(brokenStore{}, event.NewBus())
	tr.RecordRoll(6, 6)

	// the write failed but the session still holds the record
	if best := tr.Snapshot().BestScore; best != 12 {
		t.Fatalf("best = %d, want 12", best)
	}

	entries := logs.FilterMessage("persist best score").All()
	if len(entries) != 1 {
		t.Fatalf("persist warnings = %d, want 1", len(entries))
	}
}

func TestMissingBestDefaultsToZero(t *testing.T) {
	tr := New(kvstore.NewMemory(), event.NewBus())
	if best := tr.Snapshot().BestScore; best != 0 {
		t.Fatalf("best = %d, want 0", best)
	}
}
