package mdp

import "math/rand/v2"

// PolicyEpsilonGreedy is the behaviour policy used while training.
type PolicyEpsilonGreedy struct {
	Q       *QTable
	Epsilon float64
	Rand    *rand.Rand
}

func (p PolicyEpsilonGreedy) Name() string {
	return "epsilon-greedy"
}

// Act explores with probability Epsilon, picking uniformly from
// [0, C-(a+b)]; otherwise it exploits Q.
func (p PolicyEpsilonGreedy) Act(s State) Action {
	if p.Rand.Float64() < p.Epsilon {
		return Action(p.Rand.IntN(p.Q.NumActions(s)))
	}
	return p.Q.BestAction(s)
}

// Distribution is the action distribution Act samples from in state s.
func (p PolicyEpsilonGreedy) Distribution(s State) DiscretePdf[Action] {
	pdf := DiscretePdf[Action]{}
	n := p.Q.NumActions(s)
	if n == 0 {
		return pdf
	}
	best := p.Q.BestAction(s)
	for a := Action(0); int(a) < n; a++ {
		if a == best {
			pdf[a] = Probability(1.0 - p.Epsilon + p.Epsilon/float64(n))
		} else {
			pdf[a] = Probability(p.Epsilon / float64(n))
		}
	}
	return pdf
}
