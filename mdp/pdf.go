package mdp

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

type ProbabilityDistribution[Category comparable] interface {
	Choose(rng *rand.Rand) Category
}

type Probability float64

type DiscretePdf[Category comparable] map[Category]Probability

func (p DiscretePdf[Category]) Check() error {
	sum := 0.0
	for _, prob := range p {
		sum += float64(prob)
	}
	if math.Abs(sum-1) > .001 {
		return fmt.Errorf("probabilities sum to %f, not 1", sum)
	}
	return nil
}

// Poisson is the demand distribution. A zero rate always yields zero.
type Poisson struct {
	Lambda float64
}

func (p Poisson) Choose(rng *rand.Rand) int {
	if p.Lambda == 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: p.Lambda, Src: rng}.Rand())
}

// Uniform draws from [Min, Max).
type Uniform struct {
	Min float64
	Max float64
}

func (u Uniform) Choose(rng *rand.Rand) float64 {
	return distuv.Uniform{Min: u.Min, Max: u.Max, Src: rng}.Rand()
}
