package laa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigBundle_ValidYAML(t *testing.T) {
	yaml := `
ski_rental:
  buy_cost: 120
caching:
  cache_size: 4
  predictions:
    1: 10
    2: 5
oneway_trading:
  buy_price: 100
scheduling:
  num_machines: 3
search:
  max_value: 1000
`
	bundle, err := LoadConfigBundle(writeTempYAML(t, yaml))
	require.NoError(t, err)

	require.NotNil(t, bundle.SkiRental.BuyCost)
	assert.Equal(t, 120.0, *bundle.SkiRental.BuyCost)
	require.NotNil(t, bundle.Caching.CacheSize)
	assert.Equal(t, 4, *bundle.Caching.CacheSize)
	assert.Equal(t, map[int]int64{1: 10, 2: 5}, bundle.Caching.Predictions)
	require.NotNil(t, bundle.Trading.BuyPrice)
	assert.Equal(t, 100.0, *bundle.Trading.BuyPrice)
	require.NotNil(t, bundle.Scheduling.NumMachines)
	assert.Equal(t, 3, *bundle.Scheduling.NumMachines)
}

func TestLoadConfigBundle_RejectsUnknownKeys(t *testing.T) {
	yaml := `
ski_rental:
  buy_cost: 120
  typo_field: 5
`
	_, err := LoadConfigBundle(writeTempYAML(t, yaml))
	require.Error(t, err)
}

func TestLoadConfigBundle_MissingFileReturnsError(t *testing.T) {
	_, err := LoadConfigBundle(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestConfigBundle_Validate_RejectsNonPositiveBuyCost(t *testing.T) {
	bundle := &ConfigBundle{SkiRental: SkiRentalBundleConfig{BuyCost: float64Ptr(0)}}
	require.Error(t, bundle.Validate())
}

func TestConfigBundle_Validate_RejectsNegativeCacheSize(t *testing.T) {
	negOne := -1
	bundle := &ConfigBundle{Caching: CachingBundleConfig{CacheSize: &negOne}}
	require.Error(t, bundle.Validate())
}

func TestConfigBundle_Validate_RejectsZeroMachines(t *testing.T) {
	zero := 0
	bundle := &ConfigBundle{Scheduling: SchedulingBundleConfig{NumMachines: &zero}}
	require.Error(t, bundle.Validate())
}

func TestConfigBundle_Validate_AcceptsEmptyBundle(t *testing.T) {
	bundle := &ConfigBundle{}
	assert.NoError(t, bundle.Validate())
}
