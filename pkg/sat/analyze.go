package sat

// analyze derives a learned clause from a conflict by first-UIP resolution:
// it walks the trail backwards, resolving against the antecedent of the most
// recently assigned current-level literal, until exactly one current-level
// literal remains. The learned literals come back with the asserting literal
// in slot 0 and a highest-level literal in slot 1 (the two future watches),
// together with the assertion level. The trail is never mutated here.
func (s *Solver) analyze(confl clauseID) ([]lit, int) {
	learned := s.learntBuf[:0]
	learned = append(learned, litUndef) // reserved for the asserting literal

	level := s.decisionLevel()
	counter := 0 // unresolved current-level literals
	idx := len(s.trail) - 1
	p := litUndef

	for {
		c := &s.db.clauses[confl]
		if c.learned {
			s.bumpClauseActivity(confl)
		}
		lits := c.lits
		if p != litUndef {
			lits = lits[1:] // slot 0 is the literal this clause implied
		}
		for _, q := range lits {
			v := int32(q.index())
			if s.seen[v] || s.levels[v] == 0 {
				continue
			}
			s.seen[v] = true
			s.seenClear = append(s.seenClear, v)
			s.order.bump(v)
			if int(s.levels[v]) == level {
				counter++
			} else {
				learned = append(learned, q)
			}
		}

		// Step back to the most recent literal still in the resolvent.
		for !s.seen[s.trail[idx].index()] {
			idx--
		}
		p = s.trail[idx]
		idx--
		confl = s.reasons[p.index()]
		counter--
		if counter == 0 {
			break
		}
	}
	learned[0] = p.neg()

	// The assertion level is the second-highest level in the clause; move
	// one of its literals into the second watch slot so the clause stays
	// correctly watched after backjumping.
	assertLevel := 0
	for i := 1; i < len(learned); i++ {
		if lvl := int(s.levels[learned[i].index()]); lvl > assertLevel {
			assertLevel = lvl
			learned[1], learned[i] = learned[i], learned[1]
		}
	}

	for _, v := range s.seenClear {
		s.seen[v] = false
	}
	s.seenClear = s.seenClear[:0]
	s.learntBuf = learned

	return learned, assertLevel
}
