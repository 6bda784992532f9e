package laa

import "math"

// ItemID identifies a cacheable item. Items and predictions are keyed
// by integer id, matching the dispatch layer's caching payload.
type ItemID = int

// CachingConfig configures the predictive caching primitive: a fixed
// capacity and a map from item to its predicted next-access time.
// Items absent from Predictions are treated as having a next access
// of +Inf — they are never trusted to reappear.
type CachingConfig struct {
	CacheSize   int
	Predictions map[ItemID]int64
}

// Caching decides hits and misses against a fixed-capacity cache and,
// on a miss into a full cache, evicts by predicted farthest-in-future
// with missing-prediction items evicted first.
type Caching struct {
	config CachingConfig
}

// NewCaching constructs a Caching primitive. predictions may be nil,
// meaning no item has a known next-access time.
func NewCaching(cacheSize int, predictions map[ItemID]int64) (*Caching, error) {
	if cacheSize < 0 {
		return nil, invalidArgf("cache_size", cacheSize, "cache_size must be >= 0")
	}
	if predictions == nil {
		predictions = map[ItemID]int64{}
	}
	return &Caching{config: CachingConfig{CacheSize: cacheSize, Predictions: predictions}}, nil
}

// nextAccess returns the predicted next-access time for item, or
// +Inf if no prediction is on file.
func (c *Caching) nextAccess(item ItemID) int64 {
	if t, ok := c.config.Predictions[item]; ok {
		return t
	}
	return math.MaxInt64
}

// Decide reports whether requestedItem is already in currentCache
// (a hit), and returns the cache state after admitting it on a miss,
// evicting exactly one item if the admission would exceed CacheSize.
//
// currentCache is never mutated; the returned slice is a fresh copy
// reflecting the post-decision state, preserving relative insertion
// order of every retained item.
func (c *Caching) Decide(requestedItem ItemID, currentCache []ItemID) (hit bool, newCache []ItemID, err error) {
	if len(currentCache) > c.config.CacheSize {
		return false, nil, invariantf("current_cache", len(currentCache),
			"current_cache length %d exceeds cache_size %d", len(currentCache), c.config.CacheSize)
	}
	seen := make(map[ItemID]struct{}, len(currentCache))
	for _, it := range currentCache {
		if _, dup := seen[it]; dup {
			return false, nil, invariantf("current_cache", it, "current_cache contains duplicate item %v", it)
		}
		seen[it] = struct{}{}
	}

	if _, present := seen[requestedItem]; present {
		out := make([]ItemID, len(currentCache))
		copy(out, currentCache)
		return true, out, nil
	}

	candidate := make([]ItemID, len(currentCache), len(currentCache)+1)
	copy(candidate, currentCache)
	candidate = append(candidate, requestedItem)

	if len(candidate) <= c.config.CacheSize {
		return false, candidate, nil
	}

	// The item just admitted is never itself a candidate for eviction
	// unless CacheSize is 0 and it's the only entry: Belady-style
	// eviction only reshuffles what was already resident.
	evictPool := candidate[:len(candidate)-1]
	if len(evictPool) == 0 {
		evictPool = candidate
	}
	evictIdx := c.chooseEviction(evictPool)
	result := make([]ItemID, 0, len(candidate)-1)
	for i, it := range candidate {
		if i == evictIdx {
			continue
		}
		result = append(result, it)
	}
	return false, result, nil
}

// chooseEviction applies predicted-farthest-in-future eviction with
// missing-prediction priority: an item with no prediction is evicted
// before any item that has one, and ties within either group go to
// the earliest inserted (lowest index).
func (c *Caching) chooseEviction(candidate []ItemID) int {
	bestIdx := -1
	bestHasPrediction := true
	var bestNextAccess int64

	for i, it := range candidate {
		_, hasPrediction := c.config.Predictions[it]
		next := c.nextAccess(it)

		switch {
		case bestIdx == -1:
			bestIdx, bestHasPrediction, bestNextAccess = i, hasPrediction, next
		case !hasPrediction && bestHasPrediction:
			// An unpredicted item always outranks a predicted one.
			bestIdx, bestHasPrediction, bestNextAccess = i, hasPrediction, next
		case hasPrediction == bestHasPrediction && next > bestNextAccess:
			bestIdx, bestNextAccess = i, next
		}
	}
	return bestIdx
}
