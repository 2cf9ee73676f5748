package experiment

import "fmt"

// State tracks an experiment through its lifecycle.
//
// The progression is strictly linear:
//
//	NotStarted → Running → Joined → Reported
//
// Run drives every transition. There is no path backwards and no
// cancellation, so a state only ever advances: Running begins when the
// workers are spawned, Joined when the join barrier releases with every
// worker done, Reported once the final value has been read.
type State int32

const (
	// StateNotStarted: the experiment is configured but Run has not been
	// called.
	StateNotStarted State = iota

	// StateRunning: workers have been spawned and increments are in
	// flight.
	StateRunning

	// StateJoined: the join barrier has released; every worker finished.
	StateJoined

	// StateReported: the final counter value has been read into the
	// Result.
	StateReported
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateJoined:
		return "joined"
	case StateReported:
		return "reported"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}
