package mdp

type PolicyGreedy struct {
	Estimator StateActionValueEstimator
}

func (g PolicyGreedy) Name() string { return "greedy state-action value estimator" }

func (g PolicyGreedy) Act(s State) Action {
	return g.Estimator.BestAction(s)
}
