// Package laa provides the decision core of a learning-augmented
// algorithms library: a set of online-algorithm primitives that blend
// an external prediction against a trust weight to produce a decision
// whose worst-case competitive ratio stays bounded regardless of
// prediction quality.
//
// # Reading Guide
//
//   - trust.go: shared arithmetic, clamping, and validation helpers
//   - errors.go: the DecisionError type and its three kinds
//   - skirental.go / randomized_skirental.go: buy/rent threshold primitives
//   - caching.go: admission and predicted-farthest-in-future eviction
//   - oneway_trading.go: trust-blended reservation price
//   - scheduling.go: predictive list scheduling
//   - search.go: hinted best-index search
//   - bundle.go: YAML-loadable named default configs
//   - rng.go: reproducible, subsystem-isolated randomness
//
// # Architecture
//
// Every primitive is a standalone value type with its own Decide
// method; there is no shared abstract base, and apart from the random
// source a RandomizedSkiRental draws from, no mutable state survives a
// single call. The laa/dispatch subpackage wires these
// primitives behind a closed tagged union for callers (HTTP handlers,
// CLIs, SDKs) that select a primitive by name — that selection layer
// is in scope, the transports that call it are not.
package laa
