package inventory

import (
	"math/rand/v2"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

// Environment is the single-item inventory cycle. At the start of a cycle
// on-hand and in-transit stock are both available; demand is drawn, unmet
// demand is lost, and the new order becomes next cycle's in-transit stock.
// There is no ordering cost.
type Environment struct {
	Demand       mdp.Poisson
	HoldingCost  float64
	StockoutCost float64
}

var _ mdp.Environment = Environment{}

func NewEnvironment(p Params) Environment {
	return Environment{
		Demand:       mdp.Poisson{Lambda: p.PoissonLambda},
		HoldingCost:  p.HoldingCost,
		StockoutCost: p.StockoutCost,
	}
}

func (e Environment) Step(rng *rand.Rand, s mdp.State, a mdp.Action) (mdp.State, mdp.Reward) {
	return e.StepDemand(s, a, e.Demand.Choose(rng))
}

// StepDemand is Step with the demand already realized.
func (e Environment) StepDemand(s mdp.State, a mdp.Action, demand int) (mdp.State, mdp.Reward) {
	inventory := s.Inventory()
	onHand := max(0, inventory-demand)

	holding := -float64(onHand) * e.HoldingCost
	stockout := -float64(max(0, demand-inventory)) * e.StockoutCost

	next := mdp.State{OnHand: onHand, InTransit: int(a)}
	return next, mdp.Reward(holding + stockout)
}
