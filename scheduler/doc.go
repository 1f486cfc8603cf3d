// Package scheduler provides weighted interval scheduling ("maximum profit
// in job scheduling") over integer half-open intervals.
//
// What
//
//   - Given jobs (start, end, profit), select a subset whose [start, end)
//     intervals are pairwise disjoint and whose total profit is maximal.
//   - A job may start exactly when another one ends (end_a == start_b).
//   - Returns a Result containing:
//   - MaxProfit: the optimum (0 for no jobs)
//   - Selected / Indices: one witness selection achieving MaxProfit
//   - Table: the DP table bestProfit[0..n] (WithTable)
//   - Trace: one Step per DP row (WithTrace)
//
// How
//
//  1. Pack the input into job records tagged with their input position.
//  2. Sort by end time.
//  3. bestProfit[i] = max(bestProfit[i-1], profit[i-1] + bestProfit[p+1]),
//     where p is the rightmost earlier job ending no later than job i-1 starts,
//     found by binary search over the sorted ends (see Predecessor).
//
// Determinism
//
//	The optimum does not depend on input order or on the relative order of
//	jobs sharing an end time: predecessor search only compares end <= start.
//	The witness may differ between equal-profit alternatives.
//
// Complexity (n = number of jobs)
//
//   - Time:   O(n log n)   (sort + one binary search per row)
//   - Memory: O(n)
//
// Usage
//
//	best, err := scheduler.MaxProfit(
//	    []int{1, 2, 3, 3}, []int{3, 4, 5, 6}, []int{50, 10, 40, 70},
//	) // best == 120
//
//	res, err := scheduler.Schedule(jobs,
//	    scheduler.WithTrace(),
//	    scheduler.WithOnStep(func(s scheduler.Step) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrLengthMismatch   if the three columns differ in length.
//   - ErrInvalidInterval  if a job has start > end, or start == end in
//     Strict mode (the default). Lenient mode accepts start == end as a
//     zero-duration job that conflicts with nothing.
//   - ErrOptionViolation  for a nil hook or unknown validation mode.
//   - Wrapped errors returned from OnStep.
//   - ErrOverlap, ErrIndexRange, ErrDuplicateIndex from Verify.
//
// Calls share no state; concurrent use on independent inputs is safe.
package scheduler
