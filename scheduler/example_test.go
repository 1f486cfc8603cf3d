package scheduler_test

import (
	"fmt"

	"github.com/katalvlaran/jobsched/scheduler"
)

// ExampleMaxProfit solves the classic four-job instance: taking [1,3) and
// [3,6) is allowed because the second starts exactly when the first ends.
func ExampleMaxProfit() {
	best, err := scheduler.MaxProfit(
		[]int{1, 2, 3, 3},
		[]int{3, 4, 5, 6},
		[]int{50, 10, 40, 70},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// 120
}

// ExampleSchedule shows the witness selection and the DP trace.
func ExampleSchedule() {
	jobs := []scheduler.Job{
		{Start: 1, End: 3, Profit: 50},
		{Start: 2, End: 4, Profit: 10},
		{Start: 3, End: 5, Profit: 40},
		{Start: 3, End: 6, Profit: 70},
	}
	res, err := scheduler.Schedule(jobs, scheduler.WithTrace())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range res.Trace {
		fmt.Printf("row=%d pred=%d skip=%d take=%d best=%d\n", s.Row, s.Predecessor, s.Skip, s.Take, s.Best)
	}
	fmt.Printf("max=%d indices=%v\n", res.MaxProfit, res.Indices)
	// Output:
	// row=1 pred=-1 skip=0 take=50 best=50
	// row=2 pred=-1 skip=50 take=10 best=50
	// row=3 pred=0 skip=50 take=90 best=90
	// row=4 pred=0 skip=90 take=120 best=120
	// max=120 indices=[0 3]
}

// ExamplePredecessor finds the latest job ending no later than time 4.
func ExamplePredecessor() {
	ends := []int{2, 3, 3, 5, 8}
	fmt.Println(scheduler.Predecessor(ends, len(ends), 4))
	fmt.Println(scheduler.Predecessor(ends, len(ends), 1))
	// Output:
	// 2
	// -1
}
