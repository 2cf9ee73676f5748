package counter

import (
	"sync"
	"testing"
)

// TestParseDiscipline tests flag-value parsing.
func TestParseDiscipline(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Discipline
		wantErr bool
	}{
		{
			name:  "atomic",
			input: "atomic",
			want:  DisciplineAtomic,
		},
		{
			name:  "mutex",
			input: "mutex",
			want:  DisciplineMutex,
		},
		{
			name:  "none",
			input: "none",
			want:  DisciplineNone,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "case matters",
			input:   "Atomic",
			wantErr: true,
		},
		{
			name:    "unknown name",
			input:   "spinlock",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDiscipline(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDiscipline(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDiscipline(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDiscipline(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestDisciplineString tests the name round-trip and the unknown-value
// fallback.
func TestDisciplineString(t *testing.T) {
	tests := []struct {
		discipline Discipline
		want       string
	}{
		{DisciplineAtomic, "atomic"},
		{DisciplineMutex, "mutex"},
		{DisciplineNone, "none"},
		{Discipline(42), "discipline(42)"},
	}

	for _, tt := range tests {
		if got := tt.discipline.String(); got != tt.want {
			t.Errorf("Discipline(%d).String() = %q, want %q", int(tt.discipline), got, tt.want)
		}
	}
}

// TestNew tests that the factory returns the right implementation per
// discipline and rejects unknown values.
func TestNew(t *testing.T) {
	atomicCtr, err := New(DisciplineAtomic)
	if err != nil {
		t.Fatalf("New(DisciplineAtomic) error: %v", err)
	}
	if _, ok := atomicCtr.(*AtomicCounter); !ok {
		t.Errorf("New(DisciplineAtomic) = %T, want *AtomicCounter", atomicCtr)
	}

	mutexCtr, err := New(DisciplineMutex)
	if err != nil {
		t.Fatalf("New(DisciplineMutex) error: %v", err)
	}
	if _, ok := mutexCtr.(*MutexCounter); !ok {
		t.Errorf("New(DisciplineMutex) = %T, want *MutexCounter", mutexCtr)
	}

	racyCtr, err := New(DisciplineNone)
	if err != nil {
		t.Fatalf("New(DisciplineNone) error: %v", err)
	}
	if _, ok := racyCtr.(*RacyCounter); !ok {
		t.Errorf("New(DisciplineNone) = %T, want *RacyCounter", racyCtr)
	}

	if ctr, err := New(Discipline(99)); err == nil {
		t.Errorf("New(Discipline(99)) = %T, want error", ctr)
	}
}

// TestSequentialExact tests single-goroutine arithmetic for every
// implementation. With one writer even the racy counter must be exact.
func TestSequentialExact(t *testing.T) {
	for _, d := range []Discipline{DisciplineAtomic, DisciplineMutex, DisciplineNone} {
		t.Run(d.String(), func(t *testing.T) {
			ctr, err := New(d)
			if err != nil {
				t.Fatalf("New(%v) error: %v", d, err)
			}

			if got := ctr.Value(); got != 0 {
				t.Fatalf("fresh counter Value() = %d, want 0", got)
			}

			for i := 0; i < 1000; i++ {
				ctr.Inc()
			}
			ctr.Add(5)
			ctr.Add(-3)

			if got := ctr.Value(); got != 1002 {
				t.Errorf("Value() = %d, want 1002", got)
			}
		})
	}
}

// TestConcurrentExact tests the exact-product guarantee of the
// synchronized disciplines under real contention: every increment must
// survive, regardless of scheduling.
func TestConcurrentExact(t *testing.T) {
	const (
		workers    = 8
		increments = 10000
	)

	for _, d := range []Discipline{DisciplineAtomic, DisciplineMutex} {
		t.Run(d.String(), func(t *testing.T) {
			ctr, err := New(d)
			if err != nil {
				t.Fatalf("New(%v) error: %v", d, err)
			}

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < increments; i++ {
						ctr.Inc()
					}
				}()
			}
			wg.Wait()

			want := int64(workers * increments)
			if got := ctr.Value(); got != want {
				t.Errorf("Value() after %d workers x %d increments = %d, want %d",
					workers, increments, got, want)
			}
		})
	}
}

// BenchmarkAtomicInc measures the fetch-and-add discipline under
// parallel contention.
func BenchmarkAtomicInc(b *testing.B) {
	var ctr AtomicCounter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			ctr.Inc()
		}
	})
}

// BenchmarkMutexInc measures the lock-per-increment discipline under
// parallel contention.
func BenchmarkMutexInc(b *testing.B) {
	var ctr MutexCounter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			ctr.Inc()
		}
	})
}
