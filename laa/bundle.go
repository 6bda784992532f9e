package laa

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigBundle holds default construction parameters for every
// primitive, loadable from a single YAML file. Nil pointer fields mean
// "not set in YAML" — callers fall back to their own defaults.
type ConfigBundle struct {
	SkiRental  SkiRentalBundleConfig  `yaml:"ski_rental"`
	Caching    CachingBundleConfig    `yaml:"caching"`
	Trading    TradingBundleConfig    `yaml:"oneway_trading"`
	Scheduling SchedulingBundleConfig `yaml:"scheduling"`
	Search     SearchBundleConfig     `yaml:"search"`
}

// SkiRentalBundleConfig configures both ski rental primitives, which
// share a construction parameter.
type SkiRentalBundleConfig struct {
	BuyCost *float64 `yaml:"buy_cost"`
}

// CachingBundleConfig configures the caching primitive.
type CachingBundleConfig struct {
	CacheSize   *int          `yaml:"cache_size"`
	Predictions map[int]int64 `yaml:"predictions"`
}

// TradingBundleConfig configures the one-way trading primitive.
type TradingBundleConfig struct {
	BuyPrice *float64 `yaml:"buy_price"`
}

// SchedulingBundleConfig configures the scheduling primitive.
type SchedulingBundleConfig struct {
	NumMachines *int `yaml:"num_machines"`
}

// SearchBundleConfig configures the search primitive.
type SearchBundleConfig struct {
	MaxValue *int `yaml:"max_value"`
}

// LoadConfigBundle reads and strictly parses a YAML configuration file
// (unrecognized keys are rejected so typos surface immediately rather
// than silently falling back to defaults).
func LoadConfigBundle(path string) (*ConfigBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config bundle: %w", err)
	}
	var bundle ConfigBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing config bundle: %w", err)
	}
	return &bundle, nil
}

// Validate checks that every set parameter in the bundle respects its
// primitive's construction bounds.
func (b *ConfigBundle) Validate() error {
	if b.SkiRental.BuyCost != nil {
		if err := validatePositive("ski_rental.buy_cost", *b.SkiRental.BuyCost); err != nil {
			return err
		}
	}
	if b.Caching.CacheSize != nil && *b.Caching.CacheSize < 0 {
		return invalidArgf("caching.cache_size", *b.Caching.CacheSize, "caching.cache_size must be >= 0")
	}
	if b.Trading.BuyPrice != nil {
		if err := validatePositive("oneway_trading.buy_price", *b.Trading.BuyPrice); err != nil {
			return err
		}
	}
	if b.Scheduling.NumMachines != nil && *b.Scheduling.NumMachines < 1 {
		return invalidArgf("scheduling.num_machines", *b.Scheduling.NumMachines, "scheduling.num_machines must be >= 1")
	}
	if b.Search.MaxValue != nil && *b.Search.MaxValue < 0 {
		return invalidArgf("search.max_value", *b.Search.MaxValue, "search.max_value must be >= 0")
	}
	return nil
}
