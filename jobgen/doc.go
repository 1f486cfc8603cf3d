// SPDX-License-Identifier: MIT

// Package jobgen builds deterministic job sets for tests, benchmarks and demos.
//
// Generators:
//
//	Random(n)      - uniform starts over a horizon, bounded lengths and profits.
//	Disjoint(n)    - back-to-back jobs; optimum = sum of profits.
//	Overlapping(n) - jobs sharing one instant; optimum = max profit.
//	Shuffle(jobs)  - permuted copy, for order-invariance checks.
//
// Options (panic on meaningless values):
//
//	WithSeed, WithRand, WithHorizon, WithMaxDuration, WithProfitRange.
//
// Example:
//
//	jobs, err := jobgen.Random(1000, jobgen.WithSeed(42), jobgen.WithHorizon(5000))
package jobgen
