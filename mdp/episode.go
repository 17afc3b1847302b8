package mdp

import "math/rand/v2"

// GenerateEpisode samples a start state and rolls policy out for steps steps.
func GenerateEpisode(m *MDP, policy Policy, steps int, rng *rand.Rand) []Transition {
	agent := Agent{
		Policy:  policy,
		History: make([]Transition, 0, steps),
	}
	Loop(m, &agent, m.StateSpace.Sample(rng), steps, rng)
	return agent.History
}
