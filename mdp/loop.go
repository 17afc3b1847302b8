package mdp

import "math/rand/v2"

// Loop drives the agent from start for maxTimeSteps steps, recording every
// transition in the agent's history. It returns the final state.
func Loop(env *MDP, agent *Agent, start State, maxTimeSteps int, rng *rand.Rand) State {
	state := start

	for t := 0; t < maxTimeSteps; t++ {
		s0 := state

		a := agent.Policy.Act(s0)
		s1, r := env.Environment.Step(rng, s0, a)

		agent.Step(s0, a, s1, r)
		state = s1
	}
	return state
}
