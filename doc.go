// Package jobsched is an in-memory toolkit for weighted interval scheduling:
// given jobs with a start, an end and a profit, choose non-overlapping jobs
// that earn the most.
//
// Packages:
//
//	scheduler/ - Job type, MaxProfit / Schedule (sort + binary search + DP),
//	             witness reconstruction, DP trace, Verify
//	jobgen/    - deterministic fixtures: random, disjoint, overlapping, shuffle
//	jobio/     - YAML / JSON job documents (record and column forms)
//	report/    - text tables for a DP trace and a selection
//
// Quick example:
//
//	best, _ := scheduler.MaxProfit(
//	    []int{1, 2, 3, 3}, []int{3, 4, 5, 6}, []int{50, 10, 40, 70},
//	) // 120: [1,3)$50 then [3,6)$70
//
// A runnable walkthrough lives in examples/freelance_schedule.
//
//	go get github.com/katalvlaran/jobsched
package jobsched
