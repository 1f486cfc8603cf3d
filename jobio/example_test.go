package jobio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jobsched/jobio"
	"github.com/katalvlaran/jobsched/scheduler"
)

// ExampleDecode loads the column form and schedules it.
func ExampleDecode() {
	doc := `
start:  [1, 2, 3, 3]
end:    [3, 4, 5, 6]
profit: [50, 10, 40, 70]
`
	jobs, err := jobio.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := scheduler.Schedule(jobs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(jobs), res.MaxProfit, res.Selected)
	// Output:
	// 4 120 [{1 3 50} {3 6 70}]
}
