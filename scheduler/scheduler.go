package scheduler

import (
	"fmt"
	"math"
	"sort"
)

// record pairs a job with its position in the caller's input and its sort key.
type record struct {
	job   Job
	input int
	key   int // End, or math.MinInt for a zero-duration job
}

// solver encapsulates the mutable state of one Schedule run.
type solver struct {
	opts  Options
	recs  []record
	ends  []int
	best  []int
	pred  []int
	taken []bool
	res   *Result
}

// MaxProfit returns the maximum total profit obtainable from the jobs
// described by three parallel columns. Two jobs with end_a == start_b do
// not overlap. Empty input yields 0.
//
// Returns ErrLengthMismatch if the columns differ in length and
// ErrInvalidInterval if any start >= end (Strict mode).
//
// Complexity: O(n log n) time, O(n) memory.
func MaxProfit(startTime, endTime, profit []int) (int, error) {
	jobs, err := FromSlices(startTime, endTime, profit)
	if err != nil {
		return 0, err
	}
	res, err := Schedule(jobs)
	if err != nil {
		return 0, err
	}

	return res.MaxProfit, nil
}

// FromSlices packs parallel start, end and profit columns into Jobs.
// It does not validate intervals; Schedule does.
// Complexity: O(n) time, O(n) space.
func FromSlices(startTime, endTime, profit []int) ([]Job, error) {
	n := len(startTime)
	if len(endTime) != n || len(profit) != n {
		return nil, fmt.Errorf("%w: start=%d end=%d profit=%d",
			ErrLengthMismatch, len(startTime), len(endTime), len(profit))
	}
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = Job{Start: startTime[i], End: endTime[i], Profit: profit[i]}
	}

	return jobs, nil
}

// Schedule computes the optimum over jobs and reconstructs one witness
// selection. The jobs slice is never modified.
//
// Algorithm:
//  1. Copy jobs into records tagged with their input position. The sort
//     key is End, or math.MinInt for a zero-duration job (Lenient only), so
//     such jobs form a prefix that every later job is compatible with.
//  2. Sort records ascending by key (tie order is irrelevant).
//  3. best[0] = 0. For i = 1..n, with job j = recs[i-1]:
//     skip = best[i-1]
//     p    = rightmost index < i-1 with key <= j.Start, or -1
//     take = j.Profit + best[p+1]
//     best[i] = max(skip, take)
//  4. Walk back from n, following taken rows to their predecessor.
//
// Returns ErrOptionViolation for bad options, ErrInvalidInterval for
// start > end (and start == end in Strict mode), or a wrapped error
// returned by the OnStep hook.
//
// Complexity: O(n log n) time, O(n) memory.
func Schedule(jobs []Job, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := validate(jobs, o.Validation); err != nil {
		return nil, err
	}

	s := newSolver(jobs, o)
	if err := s.fill(); err != nil {
		return nil, err
	}
	s.backtrack()

	return s.res, nil
}

// validate rejects start > end in every mode and start == end in Strict mode.
// Complexity: O(n) time, O(1) space.
func validate(jobs []Job, mode Validation) error {
	for i, j := range jobs {
		if j.Start > j.End || (mode == Strict && zeroDuration(j)) {
			return fmt.Errorf("%w: job %d has start=%d end=%d (%s)",
				ErrInvalidInterval, i, j.Start, j.End, mode)
		}
	}

	return nil
}

// newSolver normalizes and sorts the input and allocates the DP state.
// Complexity: O(n log n) time, O(n) space.
func newSolver(jobs []Job, o Options) *solver {
	n := len(jobs)
	recs := make([]record, n)
	for i, j := range jobs {
		key := j.End
		if zeroDuration(j) {
			key = math.MinInt // compatible with every job, including each other
		}
		recs[i] = record{job: j, input: i, key: key}
	}
	sort.Slice(recs, func(a, b int) bool { return recs[a].key < recs[b].key })

	// search keys, ascending
	ends := make([]int, n)
	for i, r := range recs {
		ends[i] = r.key
	}

	s := &solver{
		opts:  o,
		recs:  recs,
		ends:  ends,
		best:  make([]int, n+1),
		pred:  make([]int, n+1),
		taken: make([]bool, n+1),
		res:   &Result{},
	}
	if o.Trace {
		s.res.Trace = make([]Step, 0, n)
	}

	return s
}

// fill computes best[1..n], recording predecessor and decision per row.
// Complexity: O(n log n) time; one binary search per row.
func (s *solver) fill() error {
	for i := 1; i <= len(s.recs); i++ {
		r := s.recs[i-1]
		skip := s.best[i-1]
		p := Predecessor(s.ends, i-1, r.job.Start)
		take := r.job.Profit + s.best[p+1]

		s.pred[i] = p
		// ties keep the skip, so non-positive profits are never taken
		if take > skip {
			s.best[i] = take
			s.taken[i] = true
		} else {
			s.best[i] = skip
		}

		step := Step{
			Row:         i,
			Job:         r.job,
			Input:       r.input,
			Skip:        skip,
			Take:        take,
			Predecessor: p,
			Best:        s.best[i],
			Taken:       s.taken[i],
		}
		if s.opts.Trace {
			s.res.Trace = append(s.res.Trace, step)
		}
		if err := s.opts.OnStep(step); err != nil {
			return fmt.Errorf("scheduler: OnStep error at row %d: %w", i, err)
		}
	}

	return nil
}

// backtrack sets MaxProfit and rebuilds the witness selection in sorted order.
// Complexity: O(n) time, O(n) space.
func (s *solver) backtrack() {
	n := len(s.recs)
	s.res.MaxProfit = s.best[n]
	if s.opts.Table {
		s.res.Table = append([]int(nil), s.best...)
	}

	var rows []int
	for i := n; i > 0; {
		if s.taken[i] {
			rows = append(rows, i-1)
			i = s.pred[i] + 1
			continue
		}
		i--
	}

	s.res.Selected = make([]Job, len(rows))
	s.res.Indices = make([]int, len(rows))
	for k := range rows {
		r := s.recs[rows[len(rows)-1-k]]
		s.res.Selected[k] = r.job
		s.res.Indices[k] = r.input
	}
}
