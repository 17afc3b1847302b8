package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

// PolicyResult is one policy's evaluation rollout. Costs are positive.
type PolicyResult struct {
	Name      string
	Start     mdp.State
	Rewards   []mdp.Reward
	TotalCost float64
}

// CumulativeCost is the running total of per-step costs.
func (r PolicyResult) CumulativeCost() []float64 {
	out := make([]float64, len(r.Rewards))
	var sum float64
	for i, rw := range r.Rewards {
		sum -= float64(rw)
		out[i] = sum
	}
	return out
}

type Comparison struct {
	Learned   PolicyResult
	Heuristic PolicyResult
	// Savings is Heuristic.TotalCost - Learned.TotalCost.
	Savings float64
}

// Compare evaluates learned then heuristic on the model's random stream,
// each over its own rollout of steps steps.
func Compare(m *Model, learned, heuristic mdp.Policy, steps int) Comparison {
	c := Comparison{
		Learned:   evaluate(m, learned, steps),
		Heuristic: evaluate(m, heuristic, steps),
	}
	c.Savings = c.Heuristic.TotalCost - c.Learned.TotalCost
	m.metrics.PolicyCompared(m.runID.String(), learned.Name(), heuristic.Name(), c.Learned.TotalCost, c.Heuristic.TotalCost)
	return c
}

func evaluate(m *Model, policy mdp.Policy, steps int) PolicyResult {
	stats := m.TestPolicyTrace(policy, steps)
	return PolicyResult{
		Name:      policy.Name(),
		Start:     stats.Start,
		Rewards:   stats.Rewards,
		TotalCost: -float64(stats.Total),
	}
}

// CostSummary aggregates one policy's total cost across seeds.
type CostSummary struct {
	Name   string
	Costs  []float64
	Mean   float64
	StdDev float64
}

func summarize(name string, costs []float64) CostSummary {
	s := CostSummary{Name: name, Costs: costs}
	if len(costs) > 0 {
		s.Mean = stat.Mean(costs, nil)
	}
	if len(costs) > 1 {
		s.StdDev = stat.StdDev(costs, nil)
	}
	return s
}

type SeedComparison struct {
	Seeds     []uint64
	Learned   CostSummary
	OrderUpTo CostSummary
	MaxOrder  CostSummary
}

// CompareSeeds trains one model per seed concurrently and evaluates the
// learned, order-up-to and max-order policies on each. Every model owns its
// random stream, so results depend only on the seed, not on scheduling.
func CompareSeeds(ctx context.Context, params Params, seeds []uint64, target, steps int, opts ...Option) (SeedComparison, error) {
	if err := params.Validate(); err != nil {
		return SeedComparison{}, err
	}

	type result struct {
		learned, upTo, maxOrder float64
		err                     error
	}
	results := make([]result, len(seeds))

	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func() {
			defer wg.Done()

			m, err := New(params, append(append([]Option(nil), opts...), WithSeed(seed))...)
			if err != nil {
				results[i].err = err
				return
			}
			if err := m.Train(ctx); err != nil {
				results[i].err = fmt.Errorf("seed %d: %w", seed, err)
				return
			}
			policy, err := m.OptimalPolicy()
			if err != nil {
				results[i].err = fmt.Errorf("seed %d: %w", seed, err)
				return
			}
			results[i].learned = -float64(m.TestPolicy(policy, steps))
			results[i].upTo = -float64(m.TestPolicy(OrderUpTo{Capacity: params.Capacity, TargetLevel: target}, steps))
			results[i].maxOrder = -float64(m.TestPolicy(MaxOrder{Capacity: params.Capacity}, steps))
		}()
	}
	wg.Wait()

	var errs []error
	learned := make([]float64, 0, len(seeds))
	upTo := make([]float64, 0, len(seeds))
	maxOrder := make([]float64, 0, len(seeds))
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		learned = append(learned, r.learned)
		upTo = append(upTo, r.upTo)
		maxOrder = append(maxOrder, r.maxOrder)
	}
	if len(errs) > 0 {
		return SeedComparison{}, errors.Join(errs...)
	}

	return SeedComparison{
		Seeds:     seeds,
		Learned:   summarize("table", learned),
		OrderUpTo: summarize(OrderUpTo{TargetLevel: target}.Name(), upTo),
		MaxOrder:  summarize(MaxOrder{}.Name(), maxOrder),
	}, nil
}
