package laa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizedSkiRental_ReproducibleUnderFixedSeed(t *testing.T) {
	src1 := NewPartitionedSource(NewSeedKey(42)).ForSubsystem(SubsystemSkiRental)
	src2 := NewPartitionedSource(NewSeedKey(42)).ForSubsystem(SubsystemSkiRental)

	sr1, err := NewRandomizedSkiRental(100, src1)
	require.NoError(t, err)
	sr2, err := NewRandomizedSkiRental(100, src2)
	require.NoError(t, err)

	for day := 1; day <= 50; day++ {
		b1, err := sr1.Decide(day, 80, 0.6)
		require.NoError(t, err)
		b2, err := sr2.Decide(day, 80, 0.6)
		require.NoError(t, err)
		assert.Equal(t, b1, b2, "day %d: same seed must draw the same decision sequence", day)
	}
}

func TestRandomizedSkiRental_DegenerateIntervalDoesNotPanic(t *testing.T) {
	// trust=0 and prediction == buy cost collapses [a,b] to a point.
	sr, err := NewRandomizedSkiRental(100, rand.NewSource(1))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, _ = sr.Decide(100, 100, 0.0)
	})
}

func TestRandomizedSkiRental_EventuallyBuys(t *testing.T) {
	sr, err := NewRandomizedSkiRental(100, rand.NewSource(7))
	require.NoError(t, err)

	bought := false
	for day := 1; day <= 1000; day++ {
		buy, err := sr.Decide(day, 150, 0.5)
		require.NoError(t, err)
		if buy {
			bought = true
			break
		}
	}
	assert.True(t, bought, "an arbitrarily large day must eventually buy")
}

func TestRandomizedSkiRental_RejectsInvalidTrust(t *testing.T) {
	sr, err := NewRandomizedSkiRental(100, rand.NewSource(1))
	require.NoError(t, err)

	_, err = sr.Decide(1, 10, -0.1)
	require.Error(t, err)
}

func TestRandomizedSkiRental_NilSourceUsesProcessDefault(t *testing.T) {
	sr, err := NewRandomizedSkiRental(100, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, _ = sr.Decide(1, 10, 0.5)
	})
}
