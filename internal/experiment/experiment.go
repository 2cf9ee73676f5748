// Package experiment runs the concurrent counter experiment: a fixed
// pool of workers incrementing one shared counter, a full join barrier
// over the pool, and a report of the counter's final value.
//
// The counter is owned by the Experiment and handed to workers through
// the counter.Counter interface — there is no package-level shared
// state, and workers never see a raw integer. A single synchronization
// discipline covers every increment of a run, so for the synchronized
// disciplines the exact-product invariant holds on every schedule:
//
//	FinalValue == Workers × Increments
//
// The unsynchronized discipline (counter.DisciplineNone) forfeits that
// guarantee: interleaved read-modify-write sequences lose updates and
// the final value becomes non-deterministic. It is retained as the
// documented anti-example the synchronized disciplines correct.
package experiment

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/czffzc/ConVulAgent/internal/counter"
)

const (
	// DefaultWorkers is the canonical worker pool size.
	DefaultWorkers = 10

	// DefaultIncrements is the canonical number of increments each
	// worker performs.
	DefaultIncrements = 1000
)

// Config describes one experiment run.
type Config struct {
	// Workers is the number of concurrent workers. Must be positive.
	Workers int

	// Increments is the number of increments each worker performs.
	// Must be positive.
	Increments int

	// Discipline is the synchronization strategy applied to every
	// increment of the run.
	Discipline counter.Discipline
}

// DefaultConfig returns the canonical configuration: 10 workers, 1000
// increments each, atomic discipline.
func DefaultConfig() Config {
	return Config{
		Workers:    DefaultWorkers,
		Increments: DefaultIncrements,
		Discipline: counter.DisciplineAtomic,
	}
}

// Validate checks the configuration before any worker is spawned.
//
// Zero is rejected together with negative values: the contract requires
// positive counts, and a zero-worker run has nothing to measure.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return newInvalidArgument("workers", c.Workers,
			"pass a positive worker count, e.g. 10")
	}
	if c.Increments <= 0 {
		return newInvalidArgument("increments", c.Increments,
			"pass a positive increment count, e.g. 1000")
	}
	return nil
}

// Worker is one unit of execution in the pool. It performs a fixed
// number of increments against the shared counter and then signals the
// join barrier.
type Worker struct {
	// ID is the worker's position in the pool (0-based).
	ID int

	// Increments is the fixed number of increments this worker performs.
	Increments int
}

// run executes the worker's increment loop. Every increment goes
// through the shared Counter interface, which carries the run's
// discipline.
func (w Worker) run(c counter.Counter, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := 0; i < w.Increments; i++ {
		c.Inc()
	}
}

// Result is the outcome of one completed run.
type Result struct {
	// RunID tags the run for log correlation.
	RunID uuid.UUID

	// FinalValue is the counter value observed after the join barrier.
	FinalValue int64

	// Expected is Workers × Increments: the value a synchronized run
	// must report.
	Expected int64

	// Lost is Expected − FinalValue, the number of updates dropped by
	// interleaved read-modify-write sequences. Always zero for the
	// synchronized disciplines.
	Lost int64

	// Workers, Increments and Discipline echo the configuration.
	Workers    int
	Increments int
	Discipline counter.Discipline

	// Elapsed is the wall time from spawn to join.
	Elapsed time.Duration
}

// Experiment owns the shared counter and the worker pool for one run.
//
// An Experiment is single-use: Run may be called exactly once. The pool
// is fixed at creation; no workers are added or removed afterwards.
type Experiment struct {
	cfg   Config
	id    uuid.UUID
	ctr   counter.Counter
	pool  []Worker
	state atomic.Int32
}

// New validates cfg and allocates an experiment.
//
// Validation failures return an error matching ErrInvalidArgument and
// no worker is ever spawned for the rejected configuration.
func New(cfg Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctr, err := counter.New(cfg.Discipline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	pool := make([]Worker, cfg.Workers)
	for i := range pool {
		pool[i] = Worker{ID: i, Increments: cfg.Increments}
	}

	return &Experiment{
		cfg:  cfg,
		id:   uuid.New(),
		ctr:  ctr,
		pool: pool,
	}, nil
}

// ID returns the run identifier assigned at creation.
func (e *Experiment) ID() uuid.UUID {
	return e.id
}

// State returns the current lifecycle state. Safe to call from any
// goroutine.
func (e *Experiment) State() State {
	return State(e.state.Load())
}

// Run spawns the worker pool, blocks on the join barrier until every
// worker has completed its increments, reads the final counter value
// and returns the Result.
//
// The join is unconditional: no cancellation, no timeout, no partial
// release. Calling Run a second time fails with ErrAlreadyRun.
func (e *Experiment) Run() (Result, error) {
	if !e.state.CompareAndSwap(int32(StateNotStarted), int32(StateRunning)) {
		return Result{}, ErrAlreadyRun
	}

	var wg sync.WaitGroup
	start := time.Now()
	for _, w := range e.pool {
		wg.Add(1)
		go w.run(e.ctr, &wg)
	}

	// Join barrier: releases only when every worker has finished.
	wg.Wait()
	e.state.Store(int32(StateJoined))
	elapsed := time.Since(start)

	final := e.ctr.Value()
	expected := int64(e.cfg.Workers) * int64(e.cfg.Increments)
	e.state.Store(int32(StateReported))

	return Result{
		RunID:      e.id,
		FinalValue: final,
		Expected:   expected,
		Lost:       expected - final,
		Workers:    e.cfg.Workers,
		Increments: e.cfg.Increments,
		Discipline: e.cfg.Discipline,
		Elapsed:    elapsed,
	}, nil
}
