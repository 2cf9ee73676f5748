// Package lab provides the public API for the concurrent counter
// experiment.
//
// See doc.go for detailed documentation and examples.
package lab

import "github.com/czffzc/ConVulAgent/internal/experiment"

// Run executes a synchronized counter experiment with the given shape
// and returns the final counter value.
//
// Increments use the atomic discipline, so the result is exactly
// workers × increments on every schedule. Both arguments must be
// positive; otherwise Run fails before any worker is spawned and the
// error matches [experiment.ErrInvalidArgument] under errors.Is.
//
// Run blocks until every worker has completed: the join barrier has no
// timeout and no cancellation.
func Run(workers, increments int) (int64, error) {
	cfg := experiment.DefaultConfig()
	cfg.Workers = workers
	cfg.Increments = increments

	exp, err := experiment.New(cfg)
	if err != nil {
		return 0, err
	}
	res, err := exp.Run()
	if err != nil {
		return 0, err
	}
	return res.FinalValue, nil
}

// RunDefault executes the canonical experiment: 10 workers × 1000
// increments each. It returns 10000 on every run.
func RunDefault() (int64, error) {
	return Run(experiment.DefaultWorkers, experiment.DefaultIncrements)
}
