package inventory

import (
	"fmt"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

// OrderUpTo tops committed stock up to TargetLevel, never past Capacity.
type OrderUpTo struct {
	Capacity    int
	TargetLevel int
}

func (p OrderUpTo) Name() string {
	return fmt.Sprintf("order-up-to-%d", p.TargetLevel)
}

func (p OrderUpTo) Act(s mdp.State) mdp.Action {
	inv := s.Inventory()
	return mdp.Action(min(p.Capacity-inv, max(0, p.TargetLevel-inv)))
}

// MaxOrder always orders as much as capacity allows.
type MaxOrder struct {
	Capacity int
}

func (p MaxOrder) Name() string {
	return "max-order"
}

func (p MaxOrder) Act(s mdp.State) mdp.Action {
	return mdp.Action(max(0, p.Capacity-s.Inventory()))
}
