package laa

// SearchConfig configures the hinted best-index search primitive.
type SearchConfig struct {
	MaxValue int // upper bound on entries in values; informational only
}

// Search returns the index of the largest value within a
// prediction-hinted prefix of a sequence. The hint is trusted as an
// upper bound on how far to search; a hint beyond the sequence is
// harmless and simply clamps to the last index.
type Search struct {
	config SearchConfig
}

// NewSearch constructs a Search primitive. maxValue documents the
// expected value range but is not itself enforced against values,
// since the hint (not the value range) determines how much of the
// sequence Decide inspects.
func NewSearch(maxValue int) (*Search, error) {
	if maxValue < 0 {
		return nil, invalidArgf("max_value", maxValue, "max_value must be >= 0")
	}
	return &Search{config: SearchConfig{MaxValue: maxValue}}, nil
}

// Decide returns argmax(values[0 .. min(hintIndex, len(values)-1)]),
// breaking ties toward the smallest index.
func (s *Search) Decide(values []int, hintIndex int) (int, error) {
	if len(values) == 0 {
		return 0, invalidArgf("values", len(values), "values must not be empty")
	}

	limit := hintIndex
	if limit > len(values)-1 {
		limit = len(values) - 1
	}
	if limit < 0 {
		limit = 0
	}

	best := 0
	for i := 1; i <= limit; i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best, nil
}
