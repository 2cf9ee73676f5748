// errors.go defines the validation error taxonomy for the experiment.
//
// InvalidArgument is the only defined error kind: it is raised before any
// worker is spawned, so a failed run performs zero increments. All other
// failure modes (goroutine spawn, out of memory) are fatal and propagate
// to the process boundary.
package experiment

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by errors.Is for every
// validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrAlreadyRun reports that Run was called on an experiment that has
// already executed. Experiments are single-use.
var ErrAlreadyRun = errors.New("experiment already run")

// InvalidArgumentError reports a configuration value that fails
// validation.
//
// Fields:
//   - Param: name of the offending parameter ("workers", "increments")
//   - Value: the rejected value
//   - Suggestion: optional hint for fixing the call (empty if none)
//
// Example:
//
//	err := &InvalidArgumentError{Param: "workers", Value: -1}
//	fmt.Println(err) // invalid argument: workers = -1
//
// Matches ErrInvalidArgument under errors.Is.
type InvalidArgumentError struct {
	Param      string // Parameter name
	Value      int    // Rejected value
	Suggestion string // Optional suggestion for fixing (empty if none)
}

// Error implements the error interface.
//
// Format: invalid argument: param = value
//
// If Suggestion is non-empty, it is appended on a new line with a
// "Suggestion: " prefix.
func (e *InvalidArgumentError) Error() string {
	result := fmt.Sprintf("invalid argument: %s = %d", e.Param, e.Value)
	if e.Suggestion != "" {
		result += fmt.Sprintf("\n\nSuggestion: %s", e.Suggestion)
	}
	return result
}

// Is reports whether target is ErrInvalidArgument, so callers can match
// the whole validation taxonomy with a single errors.Is check.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// newInvalidArgument creates a validation error for a numeric parameter.
func newInvalidArgument(param string, value int, suggestion string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Param:      param,
		Value:      value,
		Suggestion: suggestion,
	}
}
