package lab_test

import (
	"fmt"

	"github.com/czffzc/ConVulAgent/lab"
)

// Example runs the canonical 10 × 1000 experiment. The atomic increment
// discipline makes the result exact on every schedule, so the output is
// deterministic.
func Example() {
	final, err := lab.RunDefault()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Final counter value: %d\n", final)

	// Output:
	// Final counter value: 10000
}

// Example_singleWorker shows the degenerate one-worker case: the
// synchronization overhead must not alter correctness.
func Example_singleWorker() {
	final, err := lab.Run(1, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Println(final)

	// Output:
	// 1000
}

// Example_invalidShape shows the validation boundary: non-positive
// parameters fail before any worker is spawned.
func Example_invalidShape() {
	_, err := lab.Run(-1, 1000)
	fmt.Println(err != nil)

	// Output:
	// true
}
