// SPDX-License-Identifier: MIT
// Package: jobsched/jobgen
//
// errors.go - sentinel errors for the jobgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators attach context with %w; they never panic at runtime.
//   • Panics are confined to option constructors (WithX) receiving
//     meaningless values.

package jobgen

import "errors"

// ErrBadSize indicates a negative job count.
var ErrBadSize = errors.New("jobgen: invalid job count")

// ErrNeedRandSource indicates that a stochastic generator requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("jobgen: rng is required")
