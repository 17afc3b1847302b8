package inventory

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/metrics"
)

var ErrNotTrained = errors.New("model has not been trained")

// Model owns one Q-learning run: its parameters, its random stream and the
// value table produced by the last Train.
type Model struct {
	params Params
	mdp    *mdp.MDP
	rng    *rand.Rand
	q      *mdp.QTable

	runID         uuid.UUID
	logger        zerolog.Logger
	metrics       *metrics.Collector
	progressEvery int
}

type Option func(*Model)

// WithSeed gives the model a reproducible random stream.
func WithSeed(seed uint64) Option {
	return func(m *Model) {
		m.rng = NewRand(seed)
	}
}

// WithRand hands the model an existing random stream. The model becomes its
// only user.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		m.rng = rng
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithProgressEvery reports episode metrics every n episodes. n <= 0 turns
// episode metrics off.
func WithProgressEvery(n int) Option {
	return func(m *Model) {
		m.progressEvery = n
	}
}

func WithRunID(id uuid.UUID) Option {
	return func(m *Model) {
		m.runID = id
	}
}

// NewRand returns a PCG-backed source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New validates params and builds an untrained model. Without WithSeed or
// WithRand the random stream is seeded from the runtime.
func New(params Params, opts ...Option) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	space, err := mdp.Enumerate(params.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	m := &Model{
		params: params,
		mdp: &mdp.MDP{
			Environment:    NewEnvironment(params),
			StateSpace:     space,
			RewardDiscount: params.Gamma,
		},
		runID:         uuid.New(),
		logger:        zerolog.Nop(),
		progressEvery: 100,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = NewRand(rand.Uint64())
	}
	m.metrics = metrics.NewCollector(m.logger)
	return m, nil
}

// Train discards any previous table and runs the full episode schedule.
// On error the previous table is kept.
func (m *Model) Train(ctx context.Context) error {
	p := m.params
	runID := m.runID.String()
	m.metrics.TrainingStarted(runID, p.Capacity, m.mdp.StateSpace.Len(), p.Episodes, p.MaxActionsPerEpisode)

	ql := mdp.QLearning{
		Alpha:                p.Alpha,
		Epsilon:              p.Epsilon,
		Episodes:             p.Episodes,
		MaxActionsPerEpisode: p.MaxActionsPerEpisode,
	}
	if m.progressEvery > 0 {
		ql.OnEpisode = func(stats mdp.EpisodeStats) {
			if (stats.Episode+1)%m.progressEvery == 0 {
				m.metrics.EpisodeCompleted(runID, stats.Episode+1, float64(stats.TotalReward), stats.MeanAbsTDError)
			}
		}
	}

	start := time.Now()
	q, err := ql.Train(ctx, m.mdp, m.rng)
	if err != nil {
		m.logger.Warn().Err(err).Str("run_id", runID).Msg("Training aborted")
		return fmt.Errorf("train: %w", err)
	}
	m.q = q
	m.metrics.TrainingCompleted(runID, p.Episodes, time.Since(start))
	return nil
}

// OptimalPolicy is the greedy policy of the current table, recomputed on
// every call.
func (m *Model) OptimalPolicy() (mdp.PolicyTable, error) {
	if m.q == nil {
		return nil, ErrNotTrained
	}
	return m.q.Policy(), nil
}

// TestPolicy returns the total reward of one continuous rollout of episodes
// steps from a sampled start state.
func (m *Model) TestPolicy(policy mdp.Policy, episodes int) mdp.Reward {
	return m.TestPolicyTrace(policy, episodes).Total
}

func (m *Model) TestPolicyTrace(policy mdp.Policy, episodes int) mdp.RunStats {
	stats := mdp.RunPolicyTrace(m.mdp, policy, episodes, m.rng)
	m.metrics.PolicyEvaluated(m.runID.String(), policy.Name(), episodes, float64(stats.Total))
	return stats
}

func (m *Model) Params() Params {
	return m.params
}

func (m *Model) StateSpace() mdp.StateSpace {
	return m.mdp.StateSpace
}

// QTable is nil until the first successful Train.
func (m *Model) QTable() *mdp.QTable {
	return m.q
}

func (m *Model) RunID() uuid.UUID {
	return m.runID
}
