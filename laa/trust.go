package laa

import "math"

// validateTrust checks that tau is a finite value in [0,1].
func validateTrust(tau float64) error {
	if math.IsNaN(tau) || math.IsInf(tau, 0) {
		return invalidArgf("trust", tau, "trust must be finite")
	}
	if tau < 0 || tau > 1 {
		return invalidArgf("trust", tau, "trust must be in [0,1]")
	}
	return nil
}

// validateFinite checks that a named value is finite (not NaN or ±Inf).
func validateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidArgf(field, v, "%s must be finite", field)
	}
	return nil
}

// validateNonNegative checks that a named value is finite and >= 0.
func validateNonNegative(field string, v float64) error {
	if err := validateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return invalidArgf(field, v, "%s must be non-negative", field)
	}
	return nil
}

// validatePositive checks that a named value is finite and > 0.
func validatePositive(field string, v float64) error {
	if err := validateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalidArgf(field, v, "%s must be positive", field)
	}
	return nil
}

// blend linearly interpolates between the classical value (tau=0) and
// the predicted value (tau=1). Every trust-weighted threshold in this
// package is an instance of this one formula.
func blend(tau, predicted, classical float64) float64 {
	return tau*predicted + (1-tau)*classical
}
