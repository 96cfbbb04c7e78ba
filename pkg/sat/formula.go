package sat

// Formula is a propositional formula in conjunctive normal form. Clauses
// hold signed DIMACS literals: variable v appears as v or -v, with
// 1 <= v <= Variables.
type Formula struct {
	Variables int
	Clauses   [][]int
}

// Assignment maps every variable of a formula to a boolean. The slice is
// indexed by variable-1; use Value for 1-based access.
type Assignment []bool

func (a Assignment) Value(v int) bool {
	return a[v-1]
}

// Verify reports whether the assignment satisfies every clause of the
// formula.
func (f *Formula) Verify(a Assignment) bool {
	if len(a) < f.Variables {
		return false
	}
	for _, clause := range f.Clauses {
		satisfied := false
		for _, l := range clause {
			v := l
			if v < 0 {
				v = -v
			}
			if v == 0 || v > f.Variables {
				return false
			}
			if a.Value(v) == (l > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
