package sat

// Trail operations. The trail is the ordered record of every live
// assignment; trailLim marks the trail position at which each decision
// level starts.

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

func (s *Solver) varValue(v int32) lbool {
	return s.values[v]
}

func (s *Solver) litValue(l lit) lbool {
	v := s.values[l.index()]
	if v == lUndef || !l.sign() {
		return v
	}
	if v == lTrue {
		return lFalse
	}
	return lTrue
}

// enqueue assigns a literal at the current decision level. It reports false
// when the literal is already false, leaving the trail untouched; enqueueing
// an already-true literal is a no-op.
func (s *Solver) enqueue(l lit, from clauseID) bool {
	if v := s.litValue(l); v != lUndef {
		return v == lTrue
	}
	idx := l.index()
	s.values[idx] = boolToLbool(!l.sign())
	s.levels[idx] = int32(s.decisionLevel())
	s.reasons[idx] = from
	s.trail = append(s.trail, l)
	return true
}

// pushImplied records a propagation-forced assignment together with its
// antecedent clause.
func (s *Solver) pushImplied(l lit, from clauseID) {
	s.enqueue(l, from)
	s.stats.Propagations++
}

// pushDecision opens a new decision level with l as its decision literal.
func (s *Solver) pushDecision(l lit) {
	s.pushLevel(l)
	s.stats.Decisions++
}

// pushLevel opens a new level without counting a branching decision; the
// DPLL mode uses it to re-assert flipped decisions.
func (s *Solver) pushLevel(l lit) {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(l, noClause)
	if depth := int64(s.decisionLevel()); depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
}

// backtrackTo unassigns every variable above the target level, in reverse
// trail order, saving phases and returning variables to the branching heap.
// This is the only path that unassigns a variable.
func (s *Solver) backtrackTo(level int) {
	if level >= s.decisionLevel() {
		return
	}
	keep := s.trailLim[level]
	for i := len(s.trail) - 1; i >= keep; i-- {
		v := int32(s.trail[i].index())
		s.order.phases[v] = s.values[v] == lTrue
		s.values[v] = lUndef
		s.levels[v] = 0
		s.reasons[v] = noClause
		s.order.push(v)
	}
	s.trail = s.trail[:keep]
	s.trailLim = s.trailLim[:level]
	s.qhead = keep
}
