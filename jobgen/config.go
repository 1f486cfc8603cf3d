// SPDX-License-Identifier: MIT
// Package: jobsched/jobgen
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil  (pure/deterministic unless seeded)
//   • horizon      = 100  (start times drawn from [0, horizon))
//   • maxDuration  = 10   (durations drawn from [1, maxDuration])
//   • profit range = [1, 100]

package jobgen

import "math/rand"

// genConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type genConfig struct {
	rng         *rand.Rand
	horizon     int
	maxDuration int
	minProfit   int
	maxProfit   int
}

const (
	defaultHorizon     = 100
	defaultMaxDuration = 10
	defaultMinProfit   = 1
	defaultMaxProfit   = 100
)

// newGenConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         nil,
		horizon:     defaultHorizon,
		maxDuration: defaultMaxDuration,
		minProfit:   defaultMinProfit,
		maxProfit:   defaultMaxProfit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// duration draws a length in [1, maxDuration]; without an RNG it is maxDuration.
// Complexity: O(1).
func (c genConfig) duration() int {
	if c.rng == nil {
		return c.maxDuration
	}

	return 1 + c.rng.Intn(c.maxDuration)
}

// profit draws a reward in [minProfit, maxProfit]; without an RNG it is minProfit.
// Complexity: O(1).
func (c genConfig) profit() int {
	if c.rng == nil {
		return c.minProfit
	}

	return c.minProfit + c.rng.Intn(c.maxProfit-c.minProfit+1)
}
