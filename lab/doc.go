// Package lab is the public entry point for the concurrent counter
// experiment.
//
// The experiment is the classic shared-counter exercise: a fixed pool of
// concurrent workers each increment one shared counter a fixed number of
// times, the caller blocks on a join barrier until every worker has
// finished, and the counter's final value is reported.
//
// # Quick Start
//
//	final, err := lab.RunDefault() // 10 workers × 1000 increments
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Final counter value: %d\n", final) // always 10000
//
// Custom shapes go through [Run]:
//
//	final, err := lab.Run(100, 100000) // still exactly 10,000,000
//
// # Guarantees
//
// Every increment executes under a single synchronization discipline
// (atomic fetch-and-add for this package's entry points), so the final
// value equals workers × increments on every run, regardless of how the
// scheduler interleaves the workers. Both parameters must be positive;
// anything else fails with an invalid-argument error before a single
// worker is spawned.
//
// The join is unconditional: there is no cancellation and no timeout.
// Run returns only once every worker has completed its increments.
//
// # The defect being corrected
//
// Without synchronization, concurrent increments are read-modify-write
// sequences that interleave and lose updates, making the final value
// non-deterministic and generally smaller than the product. The
// internal packages keep that unsynchronized variant as a documented
// anti-example; the runnable demos under examples/ show it losing
// updates next to the corrected disciplines.
package lab
