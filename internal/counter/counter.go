// Package counter provides the shared-counter disciplines for the
// concurrent counter experiment.
//
// A Counter is the single shared resource of the experiment: one integer
// mutated concurrently by every worker of a run. Exactly one
// synchronization discipline is chosen per run and routes every
// increment, so mixing protected and unprotected accesses is impossible
// by construction — workers only ever see the Counter interface, never a
// raw shared integer.
//
// Three disciplines exist:
//   - DisciplineAtomic: hardware fetch-and-add per increment
//   - DisciplineMutex: sync.Mutex critical section per increment
//   - DisciplineNone: raw unsynchronized increments (the anti-example)
//
// The synchronized disciplines guarantee that after all writers are
// joined the counter holds exactly the number of increments performed.
// DisciplineNone reproduces the lost-update defect the experiment
// demonstrates.
package counter

import "fmt"

// Counter is a shared integer mutated concurrently by experiment workers.
//
// Value is well-defined once every writer has been joined. During
// concurrent access it is only meaningful for the synchronized
// implementations.
type Counter interface {
	// Inc adds one to the counter.
	Inc()

	// Add adds delta to the counter.
	Add(delta int64)

	// Value returns the current counter value.
	Value() int64
}

// Discipline selects the synchronization strategy applied to every
// increment of a run.
type Discipline int

const (
	// DisciplineAtomic performs each increment as an atomic fetch-and-add.
	DisciplineAtomic Discipline = iota

	// DisciplineMutex serializes increments through a mutex held for the
	// duration of each single increment.
	DisciplineMutex

	// DisciplineNone performs raw unsynchronized increments.
	//
	// Concurrent use is a data race and loses updates. It exists so the
	// defect the synchronized disciplines fix can be demonstrated, never
	// for correct use.
	DisciplineNone
)

// String returns the flag-level name of the discipline.
func (d Discipline) String() string {
	switch d {
	case DisciplineAtomic:
		return "atomic"
	case DisciplineMutex:
		return "mutex"
	case DisciplineNone:
		return "none"
	default:
		return fmt.Sprintf("discipline(%d)", int(d))
	}
}

// ParseDiscipline converts a flag value into a Discipline.
//
// Recognized values: "atomic", "mutex", "none".
func ParseDiscipline(s string) (Discipline, error) {
	switch s {
	case "atomic":
		return DisciplineAtomic, nil
	case "mutex":
		return DisciplineMutex, nil
	case "none":
		return DisciplineNone, nil
	default:
		return 0, fmt.Errorf("unknown discipline %q (want atomic, mutex or none)", s)
	}
}

// New returns a zeroed counter using the given discipline.
func New(d Discipline) (Counter, error) {
	switch d {
	case DisciplineAtomic:
		return &AtomicCounter{}, nil
	case DisciplineMutex:
		return &MutexCounter{}, nil
	case DisciplineNone:
		return &RacyCounter{}, nil
	default:
		return nil, fmt.Errorf("unknown discipline %v", d)
	}
}
