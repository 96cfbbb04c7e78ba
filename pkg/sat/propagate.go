package sat

// propagate runs unit propagation over every trail entry that has not been
// inspected yet. It returns the conflicting clause id, or noClause once the
// queue drains without conflict.
//
// For each newly falsified literal the watcher bucket is rewritten in
// place: clauses that keep their watch stay, clauses that find a
// replacement watch move buckets, and a conflict preserves the bucket's
// remaining entries before halting.
func (s *Solver) propagate() clauseID {
	for s.qhead < len(s.trail) {
		falsified := s.trail[s.qhead].neg()
		s.qhead++

		ws := s.db.watches[falsified]
		j := 0
		for i := 0; i < len(ws); i++ {
			id := ws[i]
			c := &s.db.clauses[id]
			if c.lits[0] == falsified {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}

			// The other watch satisfies the clause already.
			first := c.lits[0]
			if s.litValue(first) == lTrue {
				ws[j] = id
				j++
				continue
			}

			moved := false
			for k := 2; k < len(c.lits); k++ {
				if s.litValue(c.lits[k]) != lFalse {
					s.db.reassignWatch(id, k)
					moved = true
					break
				}
			}
			if moved {
				continue
			}

			ws[j] = id
			j++
			if s.litValue(first) == lFalse {
				// Conflict: keep the untouched watchers and drain
				// the queue.
				for i++; i < len(ws); i++ {
					ws[j] = ws[i]
					j++
				}
				s.db.watches[falsified] = ws[:j]
				s.qhead = len(s.trail)
				return id
			}
			s.pushImplied(first, id)
		}
		s.db.watches[falsified] = ws[:j]
	}
	return noClause
}
