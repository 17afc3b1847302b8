package mdp

import "math/rand/v2"

type StateActionValueEstimator interface {
	BestAction(State) Action
	Value(State, Action) float64
}

// QTable holds one value per feasible (state, action) pair. Rows are indexed
// by action, so row lengths are fixed by the state space and never change.
type QTable struct {
	space  StateSpace
	values map[State][]float64
}

// NewQTable fills every entry with an independent draw from [0, 1), taken
// in state-enumeration order.
func NewQTable(space StateSpace, rng *rand.Rand) *QTable {
	init := Uniform{Min: 0, Max: 1}
	q := &QTable{
		space:  space,
		values: make(map[State][]float64, space.Len()),
	}
	for _, s := range space.States {
		row := make([]float64, space.MaxAction(s)+1)
		for a := range row {
			row[a] = init.Choose(rng)
		}
		q.values[s] = row
	}
	return q
}

func (q *QTable) StateSpace() StateSpace {
	return q.space
}

// Value panics if s is outside the state space or a is infeasible for s.
func (q *QTable) Value(s State, a Action) float64 {
	return q.values[s][a]
}

func (q *QTable) Update(s State, a Action, v float64) {
	q.values[s][a] = v
}

// BestAction returns the argmax action for s. Ties go to the lowest action.
func (q *QTable) BestAction(s State) Action {
	row := q.values[s]
	best := 0
	for a := 1; a < len(row); a++ {
		if row[a] > row[best] {
			best = a
		}
	}
	return Action(best)
}

func (q *QTable) MaxValue(s State) float64 {
	return q.Value(s, q.BestAction(s))
}

func (q *QTable) NumActions(s State) int {
	return len(q.values[s])
}

// Policy extracts the greedy policy over every state.
func (q *QTable) Policy() PolicyTable {
	policy := make(PolicyTable, len(q.values))
	for _, s := range q.space.States {
		policy[s] = q.BestAction(s)
	}
	return policy
}

// Snapshot returns a deep copy of the table.
func (q *QTable) Snapshot() map[State][]float64 {
	out := make(map[State][]float64, len(q.values))
	for s, row := range q.values {
		out[s] = append([]float64(nil), row...)
	}
	return out
}
