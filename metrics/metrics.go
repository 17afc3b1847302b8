package metrics

import (
	"time"

	"github.com/rs/zerolog"
)

// Collector emits training and evaluation metrics as structured log events.
type Collector struct {
	logger zerolog.Logger
}

func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{
		logger: logger,
	}
}

// Track the start of a training run
func (c *Collector) TrainingStarted(runID string, capacity, states, episodes, stepsPerEpisode int) {
	c.logger.Info().
		Str("metric", "training_started").
		Str("run_id", runID).
		Int("capacity", capacity).
		Int("states", states).
		Int("episodes", episodes).
		Int("steps_per_episode", stepsPerEpisode).
		Msg("Training started")
}

// Track episode progress
func (c *Collector) EpisodeCompleted(runID string, episode int, batchReward, meanAbsTDError float64) {
	c.logger.Debug().
		Str("metric", "episode_completed").
		Str("run_id", runID).
		Int("episode", episode).
		Float64("batch_reward", batchReward).
		Float64("mean_abs_td_error", meanAbsTDError).
		Msg("Episode metric")
}

func (c *Collector) TrainingCompleted(runID string, episodes int, duration time.Duration) {
	c.logger.Info().
		Str("metric", "training_completed").
		Str("run_id", runID).
		Int("episodes", episodes).
		Dur("duration", duration).
		Msg("Training completed")
}

// Track policy rollouts
func (c *Collector) PolicyEvaluated(runID, policy string, steps int, totalReward float64) {
	c.logger.Info().
		Str("metric", "policy_evaluated").
		Str("run_id", runID).
		Str("policy", policy).
		Int("steps", steps).
		Float64("total_cost", -totalReward).
		Msg("Policy evaluation metric")
}

func (c *Collector) PolicyCompared(runID, learned, heuristic string, learnedCost, heuristicCost float64) {
	c.logger.Info().
		Str("metric", "policy_compared").
		Str("run_id", runID).
		Str("learned", learned).
		Str("heuristic", heuristic).
		Float64("learned_cost", learnedCost).
		Float64("heuristic_cost", heuristicCost).
		Float64("savings", heuristicCost-learnedCost).
		Msg("Policy comparison metric")
}
