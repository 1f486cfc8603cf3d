package scheduler

import (
	"fmt"
	"sort"
)

// Predecessor returns the largest index p in [0, limit) with ends[p] <= threshold,
// or -1 if no such index exists. ends[0:limit] must be sorted ascending.
// A limit outside [0, len(ends)] is clamped.
//
// Complexity: O(log limit) time, O(1) space.
func Predecessor(ends []int, limit, threshold int) int {
	if limit > len(ends) {
		limit = len(ends)
	}
	if limit <= 0 {
		return -1
	}
	// first index whose end exceeds threshold; everything left of it qualifies
	k := sort.Search(limit, func(i int) bool { return ends[i] > threshold })

	return k - 1
}

// Verify checks that indices select distinct, pairwise non-overlapping jobs
// with start <= end and returns the sum of their profits. Zero-duration jobs
// are accepted and never conflict, matching Overlaps and Lenient mode.
//
// Returns ErrIndexRange, ErrDuplicateIndex, ErrInvalidInterval or ErrOverlap,
// wrapped with the offending indices.
//
// Complexity: O(k log k) time, O(k) space for k = len(indices).
func Verify(jobs []Job, indices []int) (int, error) {
	seen := make(map[int]bool, len(indices))
	picked := make([]int, 0, len(indices))
	total := 0
	for _, idx := range indices {
		if idx < 0 || idx >= len(jobs) {
			return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, idx, len(jobs))
		}
		if seen[idx] {
			return 0, fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		if jobs[idx].Start > jobs[idx].End {
			return 0, fmt.Errorf("%w: job %d has start=%d end=%d",
				ErrInvalidInterval, idx, jobs[idx].Start, jobs[idx].End)
		}
		seen[idx] = true
		total += jobs[idx].Profit
		if zeroDuration(jobs[idx]) {
			continue // covers no instant; kept out of the sweep
		}
		picked = append(picked, idx)
	}

	// sorted by start, disjoint neighbours imply a disjoint chain
	sort.Slice(picked, func(a, b int) bool { return jobs[picked[a]].Start < jobs[picked[b]].Start })
	for k := 1; k < len(picked); k++ {
		prev, cur := picked[k-1], picked[k]
		if Overlaps(jobs[prev], jobs[cur]) {
			return 0, fmt.Errorf("%w: jobs %d and %d", ErrOverlap, prev, cur)
		}
	}

	return total, nil
}
