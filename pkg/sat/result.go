package sat

import "time"

// Outcome is the verdict of a solver run.
type Outcome uint8

const (
	Unknown Outcome = iota
	Sat
	Unsat
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	case Timeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Stats are the counters of a single run. Decisions counts free branching
// decisions only; flipped DPLL decisions and propagation-forced assignments
// are excluded. MaxDepth is the deepest decision level reached.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
	Deleted      int64
	Restarts     int64
	MaxDepth     int64
	Elapsed      time.Duration
}

// Result is the full outcome of a run. Assignment is non-nil only when
// Outcome is Sat and then covers every variable of the formula.
type Result struct {
	Outcome    Outcome
	Assignment Assignment
	Stats      Stats
}
