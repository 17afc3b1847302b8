package mdp

import "math/rand/v2"

// countdownEnv sells one unit per step and charges the order quantity.
type countdownEnv struct{}

func (countdownEnv) Step(_ *rand.Rand, s State, a Action) (State, Reward) {
	onHand := max(s.Inventory()-1, 0)
	return State{OnHand: onHand, InTransit: int(a)}, Reward(-float64(a))
}

func newTestMDP(capacity int, discount float64) *MDP {
	space, err := Enumerate(capacity)
	if err != nil {
		panic(err)
	}
	return &MDP{
		Environment:    countdownEnv{},
		StateSpace:     space,
		RewardDiscount: discount,
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
