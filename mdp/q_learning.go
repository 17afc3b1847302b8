package mdp

import (
	"context"
	"math"
	"math/rand/v2"
)

type EpisodeStats struct {
	Episode        int
	Steps          int
	TotalReward    Reward
	MeanAbsTDError float64
}

// QLearning is off-policy TD control with one batched update per episode.
// The discount comes from MDP.RewardDiscount.
type QLearning struct {
	Alpha                float64
	Epsilon              float64
	Episodes             int
	MaxActionsPerEpisode int

	// OnEpisode, if set, is called after each episode's batch update.
	OnEpisode func(EpisodeStats)
}

// Train builds a fresh table and runs exactly Episodes episodes. Each episode
// starts from a sampled state, collects MaxActionsPerEpisode transitions with
// the epsilon-greedy behaviour policy, then applies them as one batch.
// There is no convergence check. ctx is only consulted between episodes.
func (ql QLearning) Train(ctx context.Context, m *MDP, rng *rand.Rand) (*QTable, error) {
	Q := NewQTable(m.StateSpace, rng)
	behavior := PolicyEpsilonGreedy{Q: Q, Epsilon: ql.Epsilon, Rand: rng}

	for ep := 0; ep < ql.Episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch := GenerateEpisode(m, behavior, ql.MaxActionsPerEpisode, rng)
		absErr := ql.UpdateBatch(m, Q, batch)

		if ql.OnEpisode != nil {
			stats := EpisodeStats{Episode: ep, Steps: len(batch)}
			for _, step := range batch {
				stats.TotalReward += step.Reward
			}
			if len(batch) > 0 {
				stats.MeanAbsTDError = absErr / float64(len(batch))
			}
			ql.OnEpisode(stats)
		}
	}
	return Q, nil
}

// UpdateBatch applies one TD update per transition in the order given. Later
// updates see the values written by earlier ones. It returns the summed
// absolute TD error.
func (ql QLearning) UpdateBatch(m *MDP, Q *QTable, batch []Transition) float64 {
	var sum float64
	for _, step := range batch {
		a1 := Q.BestAction(step.State1)
		tdTarget := float64(step.Reward) + m.RewardDiscount*Q.Value(step.State1, a1)

		qsa := Q.Value(step.State0, step.Action)
		tdError := tdTarget - qsa
		Q.Update(step.State0, step.Action, qsa+ql.Alpha*tdError)

		sum += math.Abs(tdError)
	}
	return sum
}
