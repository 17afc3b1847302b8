package mdp

import "math/rand/v2"

type RunStats struct {
	Start   State
	Rewards []Reward
	Total   Reward
}

// RunPolicy returns the total reward of policy over a single continuous
// rollout of steps steps. The start state is sampled once and never reset.
func RunPolicy(m *MDP, policy Policy, steps int, rng *rand.Rand) Reward {
	return RunPolicyTrace(m, policy, steps, rng).Total
}

// RunPolicyTrace is RunPolicy keeping the per-step rewards.
func RunPolicyTrace(m *MDP, policy Policy, steps int, rng *rand.Rand) RunStats {
	agent := Agent{
		Policy:  policy,
		History: make([]Transition, 0, max(steps, 0)),
	}
	start := m.StateSpace.Sample(rng)
	Loop(m, &agent, start, steps, rng)

	stats := RunStats{
		Start:   start,
		Rewards: make([]Reward, 0, len(agent.History)),
	}
	for _, e := range agent.History {
		stats.Rewards = append(stats.Rewards, e.Reward)
		stats.Total += e.Reward
	}
	return stats
}
