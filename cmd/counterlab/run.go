// run.go implements the 'counterlab run' command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/czffzc/ConVulAgent/internal/counter"
	"github.com/czffzc/ConVulAgent/internal/experiment"
)

// runConfig carries the parsed flags of a 'counterlab run' invocation.
type runConfig struct {
	workers    int
	increments int
	sync       string
	verbose    bool
}

// parseRunFlags parses the run subcommand's flags.
//
// Defaults are the canonical experiment shape: 10 workers, 1000
// increments each, atomic discipline.
func parseRunFlags(args []string) (*runConfig, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cfg := &runConfig{}
	fs.IntVar(&cfg.workers, "workers", experiment.DefaultWorkers,
		"number of concurrent workers")
	fs.IntVar(&cfg.increments, "increments", experiment.DefaultIncrements,
		"increments per worker")
	fs.StringVar(&cfg.sync, "sync", counter.DisciplineAtomic.String(),
		"synchronization discipline: atomic, mutex or none")
	fs.BoolVar(&cfg.verbose, "verbose", false, "print run metadata to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCommand implements the 'counterlab run' command.
//
// Flow:
//  1. Parse flags (worker count, increments per worker, discipline)
//  2. Validate and build the experiment (failures abort before spawn)
//  3. Run: spawn workers, block on the join barrier, read the value
//  4. Print 'Final counter value: <N>' to stdout
//
// Exit code 0 on completion, 1 on invalid arguments.
func runCommand(args []string) {
	cfg, err := parseRunFlags(args)
	if err != nil {
		// flag package already reported the problem
		os.Exit(1)
	}

	res, err := runExperiment(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "run %s: %d workers x %d increments, %s discipline, %v elapsed\n",
			res.RunID, res.Workers, res.Increments, res.Discipline, res.Elapsed)
	}

	fmt.Printf("Final counter value: %d\n", res.FinalValue)

	if res.Lost > 0 {
		fmt.Fprintf(os.Stderr, "lost %d of %d updates to the data race (discipline %q)\n",
			res.Lost, res.Expected, res.Discipline)
	}
}

// runExperiment builds and runs one experiment from parsed flags.
func runExperiment(cfg *runConfig) (experiment.Result, error) {
	discipline, err := counter.ParseDiscipline(cfg.sync)
	if err != nil {
		return experiment.Result{}, err
	}

	exp, err := experiment.New(experiment.Config{
		Workers:    cfg.workers,
		Increments: cfg.increments,
		Discipline: discipline,
	})
	if err != nil {
		return experiment.Result{}, err
	}
	return exp.Run()
}
