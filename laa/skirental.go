package laa

// SkiRentalConfig configures the deterministic ski rental primitive.
type SkiRentalConfig struct {
	BuyCost float64 // cost of buying; must be > 0
}

// SkiRental decides, on each day, whether to buy or keep renting.
//
// At trust=1 it buys exactly on the predicted total-days count,
// optimal if the prediction is correct. At trust=0 it reduces to the
// classical day >= BuyCost break-even rule, which is 2-competitive.
// The threshold moves continuously between the two as trust varies,
// which is what gives the primitive its smoothness guarantee.
type SkiRental struct {
	config SkiRentalConfig
}

// NewSkiRental constructs a SkiRental with the given buy cost.
func NewSkiRental(buyCost float64) (*SkiRental, error) {
	if err := validatePositive("buy_cost", buyCost); err != nil {
		return nil, err
	}
	return &SkiRental{config: SkiRentalConfig{BuyCost: buyCost}}, nil
}

// Decide reports whether to buy on currentDay, given a predicted total
// rental length and a trust weight in [0,1]. predictedTotalDays <= 0
// is treated as "no useful prediction"; the threshold then reduces to
// (1-trust) * BuyCost.
func (s *SkiRental) Decide(currentDay int, predictedTotalDays, trust float64) (bool, error) {
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
	if y <= 0 {
		y = 0
	}
	threshold := blend(trust, y, s.config.BuyCost)
	return float64(currentDay) >= threshold, nil
}
