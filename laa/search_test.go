package laa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ArgmaxOfHintedPrefix(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{10, 99, 50}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, best)
}

func TestSearch_FullScanWhenHintCoversSequence(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{10, 5, 12, 50, 99}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, best)
}

func TestSearch_HintBeyondLengthClampsToLastIndex(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{10, 50, 20, 90}, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}

func TestSearch_TiesBreakTowardSmallestIndex(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{7, 7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSearch_ZeroHintReturnsFirstElement(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{42, 99}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSearch_NegativeHintClampsToFirstElement(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	best, err := s.Decide([]int{3, 9, 1}, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSearch_RejectsEmptyValues(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	_, err = s.Decide(nil, 0)
	require.Error(t, err)
}

func TestSearch_RejectsNegativeMaxValue(t *testing.T) {
	_, err := NewSearch(-1)
	require.Error(t, err)
}

func TestSearch_Purity(t *testing.T) {
	s, err := NewSearch(100)
	require.NoError(t, err)

	a, err1 := s.Decide([]int{3, 9, 1, 7}, 2)
	b, err2 := s.Decide([]int{3, 9, 1, 7}, 2)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a, b)
}
