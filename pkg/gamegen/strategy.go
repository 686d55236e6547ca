package gamegen

import (
	"fmt"
	"math/rand"
	"time"
)

// A Strategy decides the order in which the eligible player pool is fed
// to candidate enumeration. It never changes which candidates exist,
// only which of several equal-cost candidates is encountered first.
type Strategy interface {
	Order(pool []int) []int
}

// NewStrategy returns the named generation strategy.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "normal", "":
		return Normal{}, nil
	case "shuffled":
		return NewShuffled(nil), nil
	default:
		return nil, fmt.Errorf("gamegen: invalid strategy %s", name)
	}
}

// Normal keeps the pool in roster order, making game generation fully
// deterministic for a given history.
type Normal struct{}

func (Normal) Order(pool []int) []int {
	return pool
}

// Shuffled permutes the pool before enumeration so that ties between
// equally fair candidates are broken differently across calls.
type Shuffled struct {
	rand *rand.Rand
}

// NewShuffled returns a Shuffled strategy drawing from the given random
// source. A nil source is substituted with a time-seeded one; tests pass
// a fixed seed for reproducible orderings.
func NewShuffled(r *rand.Rand) Shuffled {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return Shuffled{rand: r}
}

func (s Shuffled) Order(pool []int) []int {
	shuffled := make([]int, len(pool))
	copy(shuffled, pool)
	s.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
