package mdp

type Policy interface {
	Name() string

	Act(State) Action
}

// PolicyTable is a deterministic state -> action mapping. States missing from
// the table get action 0.
type PolicyTable map[State]Action

func (p PolicyTable) Name() string {
	return "table"
}

func (p PolicyTable) Act(s State) Action {
	if a, ok := p[s]; ok {
		return a
	}
	return 0
}

// Tabulate evaluates policy on every state of the space.
func Tabulate(space StateSpace, policy Policy) PolicyTable {
	table := make(PolicyTable, space.Len())
	for _, s := range space.States {
		table[s] = policy.Act(s)
	}
	return table
}
