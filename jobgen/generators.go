// SPDX-License-Identifier: MIT
// Package: jobsched/jobgen
//
// generators.go - job-set constructors.
//
// Contract:
//   - n >= 0 (else ErrBadSize); n == 0 yields an empty, non-nil slice.
//   - Every emitted job has Start < End and Profit >= 1.
//   - Output is deterministic for a fixed seed.

package jobgen

import (
	"fmt"

	"github.com/katalvlaran/jobsched/scheduler"
)

const (
	methodRandom      = "Random"
	methodDisjoint    = "Disjoint"
	methodOverlapping = "Overlapping"
	methodShuffle     = "Shuffle"
)

// Random returns n jobs with start in [0, horizon), length in [1, maxDuration]
// and profit in the configured range. Requires an RNG.
// Complexity: O(n) time, O(n) space.
func Random(n int, opts ...Option) ([]scheduler.Job, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	jobs := make([]scheduler.Job, n)
	for i := range jobs {
		start := cfg.rng.Intn(cfg.horizon)
		jobs[i] = scheduler.Job{Start: start, End: start + cfg.duration(), Profit: cfg.profit()}
	}

	return jobs, nil
}

// Disjoint returns n back-to-back jobs starting at 0: each job starts exactly
// when the previous one ends, so the optimum is the sum of all profits.
// Without an RNG every job has length maxDuration and profit minProfit.
// Complexity: O(n) time, O(n) space.
func Disjoint(n int, opts ...Option) ([]scheduler.Job, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDisjoint, n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)

	jobs := make([]scheduler.Job, n)
	t := 0
	for i := range jobs {
		end := t + cfg.duration()
		jobs[i] = scheduler.Job{Start: t, End: end, Profit: cfg.profit()}
		t = end
	}

	return jobs, nil
}

// Overlapping returns n jobs that all cover the instant horizon/2, so any two
// of them overlap and the optimum is the single largest profit.
// Complexity: O(n) time, O(n) space.
func Overlapping(n int, opts ...Option) ([]scheduler.Job, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodOverlapping, n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)

	mid := cfg.horizon / 2
	jobs := make([]scheduler.Job, n)
	for i := range jobs {
		// both sides extend at least one unit past mid
		left := cfg.duration()
		right := cfg.duration()
		jobs[i] = scheduler.Job{Start: mid - left, End: mid + right, Profit: cfg.profit()}
	}

	return jobs, nil
}

// Shuffle returns a permuted copy of jobs; the input is not modified.
// Requires an RNG.
// Complexity: O(n) time, O(n) space.
func Shuffle(jobs []scheduler.Job, opts ...Option) ([]scheduler.Job, error) {
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodShuffle, ErrNeedRandSource)
	}

	out := append([]scheduler.Job(nil), jobs...)
	cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out, nil
}
