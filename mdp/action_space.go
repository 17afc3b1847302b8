package mdp

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrInvalidCapacity = errors.New("capacity must be non-negative")

var _ ActionSpace = StateSpace{}

type ActionSpace interface {
	Actions(State) []Action
}

// StateSpace is the triangle of states {(a,b): a,b >= 0, a+b <= Capacity}.
// States are listed with OnHand ascending, then InTransit ascending.
type StateSpace struct {
	Capacity int
	States   []State
}

// Enumerate builds the state space for the given capacity.
func Enumerate(capacity int) (StateSpace, error) {
	if capacity < 0 {
		return StateSpace{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	ss := StateSpace{
		Capacity: capacity,
		States:   make([]State, 0, NumStates(capacity)),
	}
	for a := 0; a <= capacity; a++ {
		for b := 0; b <= capacity-a; b++ {
			ss.States = append(ss.States, State{OnHand: a, InTransit: b})
		}
	}
	return ss, nil
}

// NumStates is (C+1)(C+2)/2.
func NumStates(capacity int) int {
	if capacity < 0 {
		return 0
	}
	return (capacity + 1) * (capacity + 2) / 2
}

func (ss StateSpace) Len() int {
	return len(ss.States)
}

func (ss StateSpace) Contains(s State) bool {
	return s.OnHand >= 0 && s.InTransit >= 0 && s.Inventory() <= ss.Capacity
}

// MaxAction is the largest order that keeps committed stock within capacity.
func (ss StateSpace) MaxAction(s State) Action {
	return Action(ss.Capacity - s.Inventory())
}

func (ss StateSpace) Actions(s State) []Action {
	if !ss.Contains(s) {
		return nil
	}
	last := ss.MaxAction(s)
	actions := make([]Action, 0, last+1)
	for a := Action(0); a <= last; a++ {
		actions = append(actions, a)
	}
	return actions
}

// Sample draws OnHand uniformly from [0, C], then InTransit uniformly from
// [0, C-OnHand]. The result is not uniform over states.
func (ss StateSpace) Sample(rng *rand.Rand) State {
	a := rng.IntN(ss.Capacity + 1)
	b := rng.IntN(ss.Capacity - a + 1)
	return State{OnHand: a, InTransit: b}
}
