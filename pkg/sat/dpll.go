package sat

import (
	"context"
	"errors"
)

// searchDPLL is the chronological controller loop: no learning and no
// restarts; a conflict flips the deepest decision with an untried polarity.
// A flip is forced, not counted as a fresh decision.
func (s *Solver) searchDPLL(ctx context.Context) Outcome {
	if s.opts.PureLiterals {
		s.assignPureLiterals()
	}
	s.flipped = append(s.flipped[:0], false) // level 0 never flips

	for {
		if confl := s.propagate(); confl != noClause {
			s.stats.Conflicts++
			if err := s.flipLatestOpenDecision(); errors.Is(err, errRootConflict) {
				return Unsat
			}
			continue
		}
		if len(s.trail) == s.nVars {
			return Sat
		}
		if err := s.checkBudget(ctx); err != nil {
			s.log.WithError(err).Debug("search aborted")
			return Timeout
		}
		s.decide()
		s.flipped = append(s.flipped, false)
	}
}

// flipLatestOpenDecision chronologically backtracks to the deepest decision
// not yet tried both ways and re-asserts it with the opposite polarity.
// With no such decision left the conflict reaches level 0.
func (s *Solver) flipLatestOpenDecision() error {
	lvl := s.decisionLevel()
	for lvl > 0 && s.flipped[lvl] {
		lvl--
	}
	if lvl == 0 {
		return errRootConflict
	}
	decision := s.trail[s.trailLim[lvl-1]]
	s.backtrackTo(lvl - 1)
	s.flipped = s.flipped[:lvl]
	s.pushLevel(decision.neg())
	s.flipped = append(s.flipped, true)
	return nil
}

// assignPureLiterals assigns every variable occurring with a single
// polarity across the clause set to that polarity at level 0. It runs
// once, before the first decision.
func (s *Solver) assignPureLiterals() {
	posSeen := make([]bool, s.nVars)
	negSeen := make([]bool, s.nVars)
	for i := range s.db.clauses {
		for _, l := range s.db.clauses[i].lits {
			if l.sign() {
				negSeen[l.index()] = true
			} else {
				posSeen[l.index()] = true
			}
		}
	}

	pures := 0
	for v := range s.nVars {
		if s.values[v] != lUndef || posSeen[v] == negSeen[v] {
			continue
		}
		l := posLit(v)
		if negSeen[v] {
			l = l.neg()
		}
		s.enqueue(l, noClause)
		pures++
	}
	if pures > 0 {
		s.log.WithField("count", pures).Debug("assigned pure literals")
	}
}
