// Package dispatch selects a decision primitive by name and type-checks
// its payload, giving an external transport (HTTP handler, CLI, SDK —
// none of which live in this module) a single call surface. The
// primitives themselves remain in package laa; this package never
// reimplements their logic.
package dispatch

import (
	"github.com/sirupsen/logrus"

	"github.com/laa-core/laa/laa"
)

// Primitive is the closed set of decision primitives reachable by name.
type Primitive string

const (
	SkiRental           Primitive = "ski_rental"
	RandomizedSkiRental Primitive = "randomized_ski_rental"
	Caching             Primitive = "caching"
	OneWayTrading       Primitive = "oneway_trading"
	Scheduling          Primitive = "scheduling"
	Search              Primitive = "search"
)

// version is the dispatch layer's own version string, independent of
// the primitives it fronts. It changes when the wire contract changes.
const version = "1.0.0"

// SkiRentalPayload is the boundary contract for ski_rental and
// randomized_ski_rental, which share a wire shape.
type SkiRentalPayload struct {
	BuyCost        float64
	CurrentDay     int
	PredictionDays float64
	Trust          float64
}

// SkiRentalResult is the boundary contract for ski_rental and
// randomized_ski_rental responses.
type SkiRentalResult struct {
	Decision       string // "buy" | "rent"
	TrustParameter float64
}

// CachingPayload is the boundary contract for caching.
type CachingPayload struct {
	CacheSize   int
	Predictions map[int]int64
	Item        int
	Cache       []int
}

// CachingResult is the boundary contract for caching responses.
type CachingResult struct {
	Decision string // "hit" | "miss"
	NewCache []int
}

// OneWayTradingPayload is the boundary contract for oneway_trading.
type OneWayTradingPayload struct {
	BuyPrice       float64
	CurrentPrice   float64
	PredictedPrice float64
	Trust          float64
}

// OneWayTradingResult is the boundary contract for oneway_trading
// responses.
type OneWayTradingResult struct {
	Decision       string // "buy" | "wait"
	TrustParameter float64
}

// SchedulingPayload is the boundary contract for scheduling.
type SchedulingPayload struct {
	NumMachines          int
	JobLengths           []int
	PredictionJobLengths []int
}

// SchedulingResult is the boundary contract for scheduling responses.
type SchedulingResult struct {
	Assignments []int
}

// SearchPayload is the boundary contract for search.
type SearchPayload struct {
	MaxValue        int
	Values          []int
	PredictionValue int
}

// SearchResult is the boundary contract for search responses.
type SearchResult struct {
	BestIndex int
}

// HealthResult is returned by Health.
type HealthResult struct {
	Status  string
	Version string
}

// Health reports liveness without touching any primitive.
func Health() HealthResult {
	return HealthResult{Status: "healthy", Version: version}
}

// DecideSkiRental type-checks payload and calls SkiRental.Decide.
func DecideSkiRental(payload SkiRentalPayload) (SkiRentalResult, error) {
	sr, err := laa.NewSkiRental(payload.BuyCost)
	if err != nil {
		return SkiRentalResult{}, err
	}
	buy, err := sr.Decide(payload.CurrentDay, payload.PredictionDays, payload.Trust)
	if err != nil {
		return SkiRentalResult{}, err
	}
	result := SkiRentalResult{Decision: decisionLabel(buy, "buy", "rent"), TrustParameter: payload.Trust}
	logrus.WithFields(logrus.Fields{"primitive": SkiRental, "decision": result.Decision}).Debug("dispatch decided")
	return result, nil
}

// DecideRandomizedSkiRental type-checks payload and calls
// RandomizedSkiRental.Decide using a process-default randomness
// source. Callers that need reproducibility should use package laa
// directly with an injected source.
func DecideRandomizedSkiRental(payload SkiRentalPayload) (SkiRentalResult, error) {
	sr, err := laa.NewRandomizedSkiRental(payload.BuyCost, nil)
	if err != nil {
		return SkiRentalResult{}, err
	}
	buy, err := sr.Decide(payload.CurrentDay, payload.PredictionDays, payload.Trust)
	if err != nil {
		return SkiRentalResult{}, err
	}
	result := SkiRentalResult{Decision: decisionLabel(buy, "buy", "rent"), TrustParameter: payload.Trust}
	logrus.WithFields(logrus.Fields{"primitive": RandomizedSkiRental, "decision": result.Decision}).Debug("dispatch decided")
	return result, nil
}

// DecideCaching type-checks payload and calls Caching.Decide.
func DecideCaching(payload CachingPayload) (CachingResult, error) {
	c, err := laa.NewCaching(payload.CacheSize, payload.Predictions)
	if err != nil {
		return CachingResult{}, err
	}
	hit, newCache, err := c.Decide(payload.Item, payload.Cache)
	if err != nil {
		return CachingResult{}, err
	}
	result := CachingResult{Decision: decisionLabel(hit, "hit", "miss"), NewCache: newCache}
	logrus.WithFields(logrus.Fields{"primitive": Caching, "decision": result.Decision}).Debug("dispatch decided")
	return result, nil
}

// DecideOneWayTrading type-checks payload and calls OneWayTrading.Decide.
func DecideOneWayTrading(payload OneWayTradingPayload) (OneWayTradingResult, error) {
	ot, err := laa.NewOneWayTrading(payload.BuyPrice)
	if err != nil {
		return OneWayTradingResult{}, err
	}
	convert, err := ot.Decide(payload.CurrentPrice, payload.PredictedPrice, payload.Trust)
	if err != nil {
		return OneWayTradingResult{}, err
	}
	result := OneWayTradingResult{Decision: decisionLabel(convert, "buy", "wait"), TrustParameter: payload.Trust}
	logrus.WithFields(logrus.Fields{"primitive": OneWayTrading, "decision": result.Decision}).Debug("dispatch decided")
	return result, nil
}

// DecideScheduling type-checks payload and calls Scheduling.Decide.
func DecideScheduling(payload SchedulingPayload) (SchedulingResult, error) {
	s, err := laa.NewScheduling(payload.NumMachines)
	if err != nil {
		return SchedulingResult{}, err
	}
	assignments, err := s.Decide(payload.JobLengths, payload.PredictionJobLengths)
	if err != nil {
		return SchedulingResult{}, err
	}
	logrus.WithFields(logrus.Fields{"primitive": Scheduling, "jobs": len(assignments)}).Debug("dispatch decided")
	return SchedulingResult{Assignments: assignments}, nil
}

// DecideSearch type-checks payload and calls Search.Decide.
func DecideSearch(payload SearchPayload) (SearchResult, error) {
	s, err := laa.NewSearch(payload.MaxValue)
	if err != nil {
		return SearchResult{}, err
	}
	best, err := s.Decide(payload.Values, payload.PredictionValue)
	if err != nil {
		return SearchResult{}, err
	}
	logrus.WithFields(logrus.Fields{"primitive": Search, "best_index": best}).Debug("dispatch decided")
	return SearchResult{BestIndex: best}, nil
}

// Dispatch type-checks payload against the primitive named by name and
// calls the corresponding Decide* function. payload must be the
// concrete *Payload type for that primitive; a mismatch is reported as
// an InvalidArgument, an unrecognized name as an UnknownPrimitive.
func Dispatch(name Primitive, payload any) (any, error) {
	switch name {
	case SkiRental:
		p, ok := payload.(SkiRentalPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideSkiRental(p)
	case RandomizedSkiRental:
		p, ok := payload.(SkiRentalPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideRandomizedSkiRental(p)
	case Caching:
		p, ok := payload.(CachingPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideCaching(p)
	case OneWayTrading:
		p, ok := payload.(OneWayTradingPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideOneWayTrading(p)
	case Scheduling:
		p, ok := payload.(SchedulingPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideScheduling(p)
	case Search:
		p, ok := payload.(SearchPayload)
		if !ok {
			return nil, payloadMismatch(name, payload)
		}
		return DecideSearch(p)
	default:
		return nil, &laa.DecisionError{
			Kind:    laa.UnknownPrimitive,
			Field:   "algorithm",
			Value:   name,
			Message: "unknown algorithm",
		}
	}
}

func payloadMismatch(name Primitive, payload any) error {
	return &laa.DecisionError{
		Kind:    laa.InvalidArgument,
		Field:   "payload",
		Value:   payload,
		Message: "payload type does not match primitive " + string(name),
	}
}

func decisionLabel(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
