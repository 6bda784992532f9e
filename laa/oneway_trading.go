package laa

// OneWayTradingConfig configures the one-way trading primitive: a
// reservation-price floor used when trust is zero.
type OneWayTradingConfig struct {
	BuyPrice float64 // reservation-price floor; must be > 0
}

// OneWayTrading decides, on each tick, whether to irrevocably convert
// at the current price. The primitive itself is stateless: callers
// that need "convert once" semantics treat the first true result as
// the commitment and stop calling Decide afterward.
type OneWayTrading struct {
	config OneWayTradingConfig
}

// NewOneWayTrading constructs a OneWayTrading primitive with the given
// reservation floor.
func NewOneWayTrading(buyPrice float64) (*OneWayTrading, error) {
	if err := validatePositive("buy_price", buyPrice); err != nil {
		return nil, err
	}
	return &OneWayTrading{config: OneWayTradingConfig{BuyPrice: buyPrice}}, nil
}

// Decide reports whether to convert now given the current price, a
// predicted peak price, and a trust weight. The reservation threshold
// blends the predicted peak (trust=1) with the configured reservation
// floor (trust=0); conversion triggers once the current price meets
// or exceeds it.
func (o *OneWayTrading) Decide(currentPrice, predictedPeakPrice, trust float64) (bool, error) {
	if err := validateNonNegative("current_price", currentPrice); err != nil {
		return false, err
	}
	if err := validateNonNegative("predicted_peak_price", predictedPeakPrice); err != nil {
		return false, err
	}
	if err := validateTrust(trust); err != nil {
		return false, err
	}

	threshold := blend(trust, predictedPeakPrice, o.config.BuyPrice)
	return currentPrice >= threshold, nil
}
