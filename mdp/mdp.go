package mdp

import (
	"fmt"
	"math/rand/v2"
)

// State is the (on-hand, in-transit) pair observed at the start of a cycle.
// OnHand is what is left after the previous cycle's demand, InTransit is the
// order placed in the previous cycle.
type State struct {
	OnHand    int
	InTransit int
}

// Inventory is the stock available to meet this cycle's demand.
func (s State) Inventory() int {
	return s.OnHand + s.InTransit
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.OnHand, s.InTransit)
}

// Action is an order quantity.
type Action int

type Reward float64

// Environment simulates one time step. Implementations draw all randomness
// from rng so that runs sharing a seed are reproducible.
type Environment interface {
	Step(rng *rand.Rand, s State, a Action) (State, Reward)
}

type MDP struct {
	Environment    Environment
	StateSpace     StateSpace
	RewardDiscount float64
}
