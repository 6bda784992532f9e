package laa

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomizedSkiRental samples a buy day once per call from a
// distribution parameterized by the predicted total days, the trust
// weight, and the buy cost, rather than committing to a single
// deterministic threshold. Over its randomness, the expected
// competitive ratio stays on the consistency-robustness Pareto
// frontier.
type RandomizedSkiRental struct {
	config SkiRentalConfig
	rng    *rand.Rand
}

// NewRandomizedSkiRental constructs a RandomizedSkiRental with the
// given buy cost. If src is nil, a process-default source is used;
// callers that need reproducibility must supply their own seeded
// source (see rng.go for a subsystem-isolated helper).
func NewRandomizedSkiRental(buyCost float64, src rand.Source) (*RandomizedSkiRental, error) {
	if err := validatePositive("buy_cost", buyCost); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(processDefaultSeed())
	}
	return &RandomizedSkiRental{
		config: SkiRentalConfig{BuyCost: buyCost},
		rng:    rand.New(src),
	}, nil
}

// Decide draws a threshold day k uniformly from [a, b], where
// a = min(y, BuyCost)*(1-trust) and b = max(y, BuyCost), and reports
// whether currentDay >= k. Each call draws independently; given a
// fixed underlying source two calls in sequence are reproducible but
// not identical to each other, matching the purity contract ("given
// identical inputs, identically distributed" rather than identical
// outputs).
func (s *RandomizedSkiRental) Decide(currentDay int, predictedTotalDays, trust float64) (bool, error) {
	if currentDay < 1 {
		return false, invalidArgf("current_day", currentDay, "current_day must be >= 1")
	}
	if err := validateFinite("predicted_total_days", predictedTotalDays); err != nil {
		return false, err
	}
	if err := validateTrust(trust); err != nil {
		return false, err
	}

	y := predictedTotalDays
	if y < 0 {
		y = 0
	}
	lo := min(y, s.config.BuyCost) * (1 - trust)
	hi := max(y, s.config.BuyCost)

	var k float64
	if lo >= hi {
		// Degenerate interval (trust=0 and y == BuyCost): no
		// randomness to draw, the threshold is the shared endpoint.
		k = hi
	} else {
		k = distuv.Uniform{Min: lo, Max: hi, Src: s.rng}.Rand()
	}
	return float64(currentDay) >= k, nil
}
