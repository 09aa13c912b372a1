package games

import (
	"fmt"
	"strconv"
)

// Outcome is one resolved draw. Key is the token recorded in the game's
// history buffer.
type Outcome struct {
	Game  string `json:"game"`
	Key   string `json:"key"`
	Face  string `json:"face,omitempty"`
	Value int    `json:"value,omitempty"`
	Dice1 int    `json:"dice1,omitempty"`
	Dice2 int    `json:"dice2,omitempty"`
	Sum   int    `json:"sum,omitempty"`
}

// Rules is the per-game contract: validate the player's pick, then produce
// an outcome and whether the pick matched.
type Rules interface {
	ID() string
	Validate(choice string) error
	Play(gen *Generator, recent []string, choice string) (Outcome, bool)
}

// CoinFlip pays when the player calls the face, with the anti-streak bias
// applied by the generator.
type CoinFlip struct{}

func (CoinFlip) ID() string { return "coin" }

func (CoinFlip) Validate(choice string) error {
	if choice != Heads && choice != Tails {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	return nil
}

func (CoinFlip) Play(gen *Generator, recent []string, choice string) (Outcome, bool) {
	face := gen.Flip(recent)
	return Outcome{Game: "coin", Key: face, Face: face}, face == choice
}

// GuessDie pays when the player predicts a single die.
type GuessDie struct{}

func (GuessDie) ID() string { return "guess" }

func (GuessDie) Validate(choice string) error {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > 6 {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	return nil
}

func (GuessDie) Play(gen *Generator, recent []string, choice string) (Outcome, bool) {
	v := gen.Die()
	key := strconv.Itoa(v)
	return Outcome{Game: "guess", Key: key, Value: v}, key == choice
}

// DiceRoll pays when the player predicts the sum of two dice. Every resolved
// roll also feeds the session score tracker.
type DiceRoll struct{}

func (DiceRoll) ID() string { return "dice" }

func (DiceRoll) Validate(choice string) error {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 2 || n > 12 {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	return nil
}

func (DiceRoll) Play(gen *Generator, recent []string, choice string) (Outcome, bool) {
	d1, d2 := gen.Die(), gen.Die()
	sum := d1 + d2
	key := strconv.Itoa(sum)
	return Outcome{Game: "dice", Key: key, Dice1: d1, Dice2: d2, Sum: sum}, key == choice
}
