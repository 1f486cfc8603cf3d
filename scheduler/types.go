// Package scheduler defines the job record, tunable options and error
// definitions for weighted interval scheduling.
package scheduler

import (
	"errors"
	"fmt"
)

// Sentinel errors for scheduling and verification.
var (
	// ErrLengthMismatch is returned when the start, end and profit columns differ in length.
	ErrLengthMismatch = errors.New("scheduler: start, end and profit must have equal length")

	// ErrInvalidInterval is returned for a job with start > end, and in Strict
	// mode also for start == end.
	ErrInvalidInterval = errors.New("scheduler: invalid job interval")

	// ErrOverlap is returned by Verify when two selected jobs overlap.
	ErrOverlap = errors.New("scheduler: selected jobs overlap")

	// ErrIndexRange is returned by Verify for an index outside the job slice.
	ErrIndexRange = errors.New("scheduler: job index out of range")

	// ErrDuplicateIndex is returned by Verify when an index is selected twice.
	ErrDuplicateIndex = errors.New("scheduler: job index selected twice")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scheduler: invalid option supplied")
)

// Job is a schedulable half-open interval [Start, End) with a reward.
// Jobs carry no identity beyond their fields; duplicates are independent.
type Job struct {
	Start  int
	End    int
	Profit int
}

// Overlaps reports whether a and b share any instant. Intervals are
// half-open, so a job may start exactly when another one ends, and a
// zero-duration job (Start == End) covers no instant and overlaps nothing.
//
// Complexity: O(1) time, O(1) space.
func Overlaps(a, b Job) bool {
	if a.Start >= a.End || b.Start >= b.End {
		return false
	}

	return a.Start < b.End && b.Start < a.End
}

// zeroDuration reports whether j covers no instant.
func zeroDuration(j Job) bool {
	return j.Start == j.End
}

// Validation selects how Schedule treats malformed intervals.
type Validation int

const (
	// Strict rejects any job with Start >= End with ErrInvalidInterval.
	Strict Validation = iota

	// Lenient accepts zero-duration jobs (Start == End). They never conflict
	// with any other job, so one with positive profit is always selected.
	// Start > End is still rejected with ErrInvalidInterval.
	Lenient
)

// String returns the mode name.
func (v Validation) String() string {
	switch v {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Validation(%d)", int(v))
	}
}

// Option configures Schedule via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when Schedule is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Schedule run.
type Options struct {
	// Validation selects Strict (default) or Lenient interval checks.
	Validation Validation

	// Trace, if true, records one Step per DP row in Result.Trace.
	Trace bool

	// Table, if true, copies the DP table into Result.Table.
	Table bool

	// OnStep is called after each DP row is finalized. If it returns an
	// error, Schedule aborts and propagates that error.
	OnStep func(Step) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Strict validation
//   - no trace and no table copy
//   - a no-op OnStep hook
//
// Complexity: O(1) time, O(1) space.
func DefaultOptions() Options {
	return Options{
		Validation: Strict,
		Trace:      false,
		Table:      false,
		OnStep:     func(Step) error { return nil },
		err:        nil,
	}
}

// WithValidation selects the interval validation mode.
// An unknown mode is an ErrOptionViolation.
// Complexity: O(1) time, O(1) space.
func WithValidation(v Validation) Option {
	return func(o *Options) {
		switch v {
		case Strict, Lenient:
			o.Validation = v // known mode
		default:
			// recorded here, surfaced by Schedule
			o.err = fmt.Errorf("%w: unknown validation mode %d", ErrOptionViolation, int(v))
		}
	}
}

// WithTrace records the DP trace in Result.Trace.
// Complexity: O(1) to apply; the trace itself costs O(n) memory per run.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithTable copies bestProfit[0..n] into Result.Table.
// Complexity: O(1) to apply; the copy costs O(n) per run.
func WithTable() Option {
	return func(o *Options) {
		o.Table = true
	}
}

// WithOnStep registers a callback invoked once per DP row; returning an
// error from it stops the run. A nil callback is an ErrOptionViolation.
// Complexity: O(1) time, O(1) space; the hook runs n times per Schedule.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnStep hook is nil", ErrOptionViolation)
			return
		}
		o.OnStep = fn
	}
}

// Step describes one finalized DP row.
type Step struct {
	// Row is the 1-based DP index i; it considers the first Row jobs by end time.
	Row int

	// Job is the job at sorted position Row-1.
	Job Job

	// Input is the position of Job in the caller's slice.
	Input int

	// Skip is bestProfit[Row-1].
	Skip int

	// Take is Job.Profit plus the best profit of its predecessor prefix.
	Take int

	// Predecessor is the rightmost sorted index p < Row-1 compatible with Job,
	// or -1 if none exists. Zero-duration jobs sort ahead of all others and are
	// compatible with everything.
	Predecessor int

	// Best is bestProfit[Row] = max(Skip, Take).
	Best int

	// Taken reports whether Take strictly beat Skip.
	Taken bool
}

// Result holds the outcome of Schedule:
//   - MaxProfit: the optimum total profit (0 for no jobs).
//   - Selected: a witness set of pairwise non-overlapping jobs summing to
//     MaxProfit, zero-duration jobs first, then ordered by end time.
//   - Indices: input positions of Selected, in the same order.
//   - Table: bestProfit[0..n], populated only with WithTable.
//   - Trace: one Step per row, populated only with WithTrace.
type Result struct {
	MaxProfit int
	Selected  []Job
	Indices   []int
	Table     []int
	Trace     []Step
}
