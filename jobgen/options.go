// SPDX-License-Identifier: MIT
// Package: jobsched/jobgen
//
// options.go - functional options for the jobgen package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package jobgen

import "math/rand"

// Option customizes a generator by mutating a genConfig before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("jobgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		// Attach the RNG; the caller owns the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		// Seeded source gives reproducible starts, lengths and shuffles.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithHorizon bounds start times of Random jobs to [0, h). Panics if h < 1.
// Overlapping jobs are centred on h/2.
// Complexity: O(1) time, O(1) space.
func WithHorizon(h int) Option {
	if h < 1 {
		panic("jobgen: WithHorizon(h<1)")
	}
	return func(c *genConfig) {
		c.horizon = h
	}
}

// WithMaxDuration bounds job lengths to [1, d]. Panics if d < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxDuration(d int) Option {
	if d < 1 {
		panic("jobgen: WithMaxDuration(d<1)")
	}
	return func(c *genConfig) {
		c.maxDuration = d
	}
}

// WithProfitRange bounds profits to [lo, hi]. Panics unless 1 <= lo <= hi,
// which keeps every generated job worth taking.
// Complexity: O(1) time, O(1) space.
func WithProfitRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("jobgen: WithProfitRange(lo<1 || hi<lo)")
	}
	return func(c *genConfig) {
		c.minProfit, c.maxProfit = lo, hi
	}
}
