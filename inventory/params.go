package inventory

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidParams = errors.New("invalid inventory parameters")

// Params configures one inventory model. Costs are per unit per cycle.
type Params struct {
	Capacity      int
	PoissonLambda float64
	HoldingCost   float64
	StockoutCost  float64

	Gamma   float64
	Alpha   float64
	Epsilon float64

	Episodes             int
	MaxActionsPerEpisode int
}

func DefaultParams() Params {
	return Params{
		Capacity:             10,
		PoissonLambda:        4,
		HoldingCost:          8,
		StockoutCost:         10,
		Gamma:                0.9,
		Alpha:                0.1,
		Epsilon:              0.1,
		Episodes:             1000,
		MaxActionsPerEpisode: 1000,
	}
}

// Validate reports every offending field, wrapped in ErrInvalidParams.
func (p Params) Validate() error {
	var errs []error
	if p.Capacity < 0 {
		errs = append(errs, fmt.Errorf("capacity must be >= 0, got %d", p.Capacity))
	}
	if !nonNegative(p.PoissonLambda) {
		errs = append(errs, fmt.Errorf("poisson_lambda must be finite and >= 0, got %v", p.PoissonLambda))
	}
	if !nonNegative(p.HoldingCost) {
		errs = append(errs, fmt.Errorf("holding_cost must be finite and >= 0, got %v", p.HoldingCost))
	}
	if !nonNegative(p.StockoutCost) {
		errs = append(errs, fmt.Errorf("stockout_cost must be finite and >= 0, got %v", p.StockoutCost))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"gamma", p.Gamma},
		{"alpha", p.Alpha},
		{"epsilon", p.Epsilon},
	} {
		if !(f.value >= 0 && f.value <= 1) {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", f.name, f.value))
		}
	}
	if p.Episodes < 1 {
		errs = append(errs, fmt.Errorf("episodes must be >= 1, got %d", p.Episodes))
	}
	if p.MaxActionsPerEpisode < 1 {
		errs = append(errs, fmt.Errorf("max_actions_per_episode must be >= 1, got %d", p.MaxActionsPerEpisode))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
