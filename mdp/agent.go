package mdp

// Transition is one unit of experience.
type Transition struct {
	State0 State
	Action Action
	Reward Reward
	State1 State
}

type Agent struct {
	History []Transition
	Policy  Policy
}

func (a *Agent) Step(state0 State, action Action, state1 State, reward Reward) {
	a.History = append(a.History, Transition{
		State0: state0,
		Action: action,
		Reward: reward,
		State1: state1,
	})
}
