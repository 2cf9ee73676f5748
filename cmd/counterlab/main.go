// Package main implements the counterlab CLI tool.
//
// counterlab runs the concurrent counter experiment: a fixed pool of
// concurrent workers each incrementing one shared counter a fixed number
// of times, a full join over the pool, and a single report line with the
// counter's final value.
//
// Usage:
//
//	counterlab run                          # 10 workers x 1000 increments, atomic
//	counterlab run -workers 4 -sync mutex   # custom shape and discipline
//	counterlab run -sync none               # the anti-example: lost updates
//
// The synchronized disciplines (atomic, mutex) guarantee the final value
// equals workers x increments on every run; the 'none' discipline
// reproduces the original data race for contrast.
//
// This is the CLI entry point for the counter lab.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		runCommand(os.Args[2:])
	case "version", "--version", "-v":
		versionCommand(os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`counterlab - concurrent counter experiment

USAGE:
    counterlab <command> [arguments]

COMMANDS:
    run        Run the counter experiment
    version    Show version information
    help       Show this help message

RUN FLAGS:
    -workers N       number of concurrent workers (default 10)
    -increments N    increments per worker (default 1000)
    -sync NAME       synchronization discipline: atomic, mutex or none
                     (default atomic)
    -verbose         print run metadata to stderr

EXAMPLES:
    # The canonical experiment: 10 workers x 1000 increments
    counterlab run

    # Serialize increments through a mutex instead of fetch-and-add
    counterlab run -sync mutex

    # Scale the shape up; the exact-product invariant still holds
    counterlab run -workers 100 -increments 100000

    # Reproduce the original defect: unsynchronized increments lose
    # updates and the final value becomes non-deterministic
    counterlab run -sync none

ABOUT:
    counterlab demonstrates the classic shared-counter data race and its
    correction. Workers never see a raw shared integer: every increment
    goes through a single counter discipline chosen for the whole run,
    so a run cannot mix protected and unprotected accesses.

    Output is a single line of the form:

        Final counter value: <N>

    With a synchronized discipline, N is exactly workers x increments on
    every execution. Exit code is 0 on completion and 1 on invalid
    arguments (validation aborts before any worker is spawned).

FOR MORE INFORMATION:
    Repository: https://github.com/czffzc/ConVulAgent

`)
}

// runCommand is implemented in run.go
// versionCommand is implemented in version.go
