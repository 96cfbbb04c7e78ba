package sat

import (
	"errors"
	"fmt"
)

// DegenerateClauseError reports a clause whose literal encoding is invalid:
// a zero literal or a variable outside [1, Variables]. Construction aborts
// on the first such clause.
type DegenerateClauseError struct {
	Clause  int // 0-based position of the clause in the input
	Literal int // the offending literal
}

func (e *DegenerateClauseError) Error() string {
	return fmt.Sprintf("clause %d: literal %d is outside the declared variable range", e.Clause, e.Literal)
}

// Internal signals. Both are converted into outcomes by the search loop and
// never escape to callers.
var (
	errRootConflict     = errors.New("conflict at decision level 0")
	errResourceExceeded = errors.New("resource bound exceeded")
)
