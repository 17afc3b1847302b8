package mdp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQLearning_UpdateBatchIsSequential(t *testing.T) {
	m := newTestMDP(1, 0.9)
	Q := NewQTable(m.StateSpace, seeded(1))
	for _, s := range m.StateSpace.States {
		for a := Action(0); int(a) < Q.NumActions(s); a++ {
			Q.Update(s, a, 0)
		}
	}
	Q.Update(State{0, 0}, 1, 1)

	batch := []Transition{
		{State0: State{0, 0}, Action: 1, Reward: -1, State1: State{0, 1}},
		{State0: State{0, 1}, Action: 0, Reward: -2, State1: State{0, 0}},
	}

	ql := QLearning{Alpha: 0.5}
	absErr := ql.UpdateBatch(m, Q, batch)

	// First update: target -1, error -2, Q((0,0),1) = 1 - 1 = 0.
	assert.InDelta(t, 0.0, Q.Value(State{0, 0}, 1), 1e-12)
	// Second update sees the first: max Q((0,0)) is now 0, so target -2.
	// A snapshot update would have used 1 and produced -0.55.
	assert.InDelta(t, -1.0, Q.Value(State{0, 1}, 0), 1e-12)
	assert.InDelta(t, 4.0, absErr, 1e-12)
}

func TestQLearning_RepeatedPairInBatch(t *testing.T) {
	m := newTestMDP(1, 0)
	Q := NewQTable(m.StateSpace, seeded(1))
	s := State{1, 0}
	Q.Update(s, 0, 0)

	batch := []Transition{
		{State0: s, Action: 0, Reward: -4, State1: State{0, 0}},
		{State0: s, Action: 0, Reward: -4, State1: State{0, 0}},
	}
	QLearning{Alpha: 0.5}.UpdateBatch(m, Q, batch)

	// -4 * (1 - 0.5^2)
	assert.InDelta(t, -3.0, Q.Value(s, 0), 1e-12)
}

func TestQLearning_RunsExactlyEpisodes(t *testing.T) {
	m := newTestMDP(4, 0.9)

	var seen []EpisodeStats
	ql := QLearning{
		Alpha:                0.1,
		Epsilon:              0.1,
		Episodes:             37,
		MaxActionsPerEpisode: 13,
		OnEpisode: func(s EpisodeStats) {
			seen = append(seen, s)
		},
	}

	Q, err := ql.Train(context.Background(), m, seeded(7))
	require.NoError(t, err)
	require.NotNil(t, Q)
	require.Len(t, seen, 37)
	for i, s := range seen {
		assert.Equal(t, i, s.Episode)
		assert.Equal(t, 13, s.Steps)
		assert.LessOrEqual(t, float64(s.TotalReward), 0.0)
		assert.GreaterOrEqual(t, s.MeanAbsTDError, 0.0)
	}
}

func TestQLearning_Deterministic(t *testing.T) {
	m := newTestMDP(6, 0.9)
	ql := QLearning{Alpha: 0.1, Epsilon: 0.2, Episodes: 50, MaxActionsPerEpisode: 40}

	q1, err := ql.Train(context.Background(), m, seeded(99))
	require.NoError(t, err)
	q2, err := ql.Train(context.Background(), m, seeded(99))
	require.NoError(t, err)

	assert.Equal(t, q1.Snapshot(), q2.Snapshot())
	assert.Equal(t, q1.Policy(), q2.Policy())
}

func TestQLearning_LearnsToAvoidCost(t *testing.T) {
	// Ordering is the only cost in countdownEnv, so ordering nothing is optimal.
	m := newTestMDP(3, 0.5)
	ql := QLearning{Alpha: 0.2, Epsilon: 0.3, Episodes: 200, MaxActionsPerEpisode: 50}

	Q, err := ql.Train(context.Background(), m, seeded(5))
	require.NoError(t, err)

	for s, a := range Q.Policy() {
		assert.Equal(t, Action(0), a, "state %v", s)
	}
}

func TestQLearning_Cancelled(t *testing.T) {
	m := newTestMDP(3, 0.9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Q, err := QLearning{Episodes: 10, MaxActionsPerEpisode: 10}.Train(ctx, m, seeded(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, Q)
}
