package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_StateCount(t *testing.T) {
	for c := 0; c <= 20; c++ {
		space, err := Enumerate(c)
		require.NoError(t, err)
		assert.Equal(t, (c+1)*(c+2)/2, space.Len(), "capacity %d", c)
		assert.Equal(t, NumStates(c), space.Len())

		seen := make(map[State]bool, space.Len())
		for _, s := range space.States {
			assert.GreaterOrEqual(t, s.OnHand, 0)
			assert.GreaterOrEqual(t, s.InTransit, 0)
			assert.LessOrEqual(t, s.Inventory(), c)
			assert.False(t, seen[s], "duplicate state %v", s)
			seen[s] = true
		}
	}
}

func TestEnumerate_Order(t *testing.T) {
	space, err := Enumerate(2)
	require.NoError(t, err)

	expected := []State{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 0},
	}
	assert.Equal(t, expected, space.States)
}

func TestEnumerate_NegativeCapacity(t *testing.T) {
	_, err := Enumerate(-1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.Equal(t, 0, NumStates(-3))
}

func TestEnumerate_ZeroCapacity(t *testing.T) {
	space, err := Enumerate(0)
	require.NoError(t, err)
	require.Equal(t, []State{{0, 0}}, space.States)
	assert.Equal(t, []Action{0}, space.Actions(State{0, 0}))
}

func TestStateSpace_Actions(t *testing.T) {
	space, err := Enumerate(10)
	require.NoError(t, err)

	for _, s := range space.States {
		actions := space.Actions(s)
		require.Len(t, actions, 10-s.Inventory()+1)
		for i, a := range actions {
			assert.Equal(t, Action(i), a)
		}
		assert.Equal(t, Action(10-s.Inventory()), space.MaxAction(s))
	}

	assert.Nil(t, space.Actions(State{OnHand: 6, InTransit: 5}))
	assert.Nil(t, space.Actions(State{OnHand: -1, InTransit: 0}))
}

func TestStateSpace_Sample(t *testing.T) {
	space, err := Enumerate(7)
	require.NoError(t, err)

	rng := seeded(1)
	hits := make(map[State]int)
	for i := 0; i < 5000; i++ {
		s := space.Sample(rng)
		require.True(t, space.Contains(s), "sampled %v outside the space", s)
		hits[s]++
	}
	assert.Len(t, hits, space.Len(), "every state should be reachable by sampling")
}
