package games

import (
	"math/rand"
	"sync"
	"time"
)

const (
	Heads = "Heads"
	Tails = "Tails"
)

// Generator is the randomness source shared by every game. It is pure with
// respect to game state: histories are owned and mutated by the engines.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Die returns a uniform draw in 1..6.
func (g *Generator) Die() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(6) + 1
}

// Flip draws Heads or Tails. When the last three recorded outcomes are the
// same face, the opposite face comes up with probability 0.75: the house
// deliberately suppresses a fourth identical result. Exactly the last three
// entries are inspected, not a rolling majority.
func (g *Generator) Flip(recent []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(recent) >= 3 {
		last3 := recent[len(recent)-3:]
		if last3[0] == last3[1] && last3[1] == last3[2] {
			streak := last3[0]
			if g.rng.Float64() < 0.75 {
				return opposite(streak)
			}
			return streak
		}
	}

	if g.rng.Float64() < 0.5 {
		return Heads
	}
	return Tails
}

func opposite(face string) string {
	if face == Heads {
		return Tails
	}
	return Heads
}
