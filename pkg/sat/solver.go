// Package sat decides satisfiability of propositional formulas in
// conjunctive normal form, with a conflict-driven (CDCL) and a
// chronological (DPLL) search mode.
package sat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

const clauseActivityCeiling = 1e20

var validModes = []Mode{ModeDPLL, ModeCDCL}

// Solver runs one satisfiability search over a formula. A solver instance
// is good for exactly one search and must not be driven from more than one
// goroutine; Solve caches its result, so repeated calls return the first
// verdict.
type Solver struct {
	nVars int
	opts  Options
	log   logrus.FieldLogger

	db    *database
	order *order

	trail    []lit
	trailLim []int
	qhead    int

	values  []lbool
	levels  []int32
	reasons []clauseID

	// Scratch state reused across conflict analysis rounds.
	seen      []bool
	seenClear []int32
	learntBuf []lit

	claInc       float64
	rootConflict bool
	flipped      []bool // per-level flip markers, DPLL only

	stats    Stats
	start    time.Time
	deadline time.Time

	done   bool
	result Result
}

// Solve constructs a solver for the formula and runs it to completion.
// Construction errors (degenerate clauses, invalid options) come back
// before any search happens.
func Solve(f *Formula, opts Options) (Result, error) {
	s, err := NewSolver(f, opts)
	if err != nil {
		return Result{}, err
	}
	return s.Solve(), nil
}

func NewSolver(f *Formula, opts Options) (*Solver, error) {
	opts = opts.withDefaults()
	if !slices.Contains(validModes, opts.Mode) {
		return nil, fmt.Errorf("%v is not a valid mode", opts.Mode)
	}
	if f.Variables < 0 {
		return nil, fmt.Errorf("negative variable count: %v", f.Variables)
	}

	n := f.Variables
	s := &Solver{
		nVars:   n,
		opts:    opts,
		log:     opts.logger(),
		db:      newDatabase(n, len(f.Clauses)),
		order:   newOrder(n, opts.VarDecay),
		trail:   make([]lit, 0, n),
		values:  make([]lbool, n),
		levels:  make([]int32, n),
		reasons: make([]clauseID, n),
		seen:    make([]bool, n),
		claInc:  1.0,
	}
	for i := range s.reasons {
		s.reasons[i] = noClause
	}

	for i, clause := range f.Clauses {
		if err := s.addClause(clause, i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// addClause validates, simplifies and stores one input clause. Only
// level-0 assignments exist while clauses are added, so literals already
// false are dropped and clauses already true are skipped; a clause left
// empty records the root conflict that makes the formula trivially
// unsatisfiable.
func (s *Solver) addClause(raw []int, pos int) error {
	for _, l := range raw {
		if l == 0 || l > s.nVars || l < -s.nVars {
			return &DegenerateClauseError{Clause: pos, Literal: l}
		}
	}

	ls := make([]lit, 0, len(raw))
	for _, rawLit := range raw {
		l := litFromInt(rawLit)
		switch s.litValue(l) {
		case lTrue:
			return nil // satisfied at level 0
		case lFalse:
			continue
		}
		dup := false
		for _, kept := range ls {
			if kept == l {
				dup = true
				break
			}
			if kept == l.neg() {
				return nil // tautology
			}
		}
		if !dup {
			ls = append(ls, l)
		}
	}

	switch len(ls) {
	case 0:
		s.rootConflict = true
	case 1:
		s.enqueue(ls[0], noClause)
		s.stats.Propagations++
	default:
		s.db.add(ls, false)
	}
	return nil
}

// Solve runs the search to completion. See SolveContext.
func (s *Solver) Solve() Result {
	return s.SolveContext(context.Background())
}

// SolveContext runs the search, observing ctx at the same per-iteration
// boundary as the other resource bounds; a cancelled context yields the
// Timeout outcome.
func (s *Solver) SolveContext(ctx context.Context) Result {
	if s.done {
		return s.result
	}
	s.start = time.Now()
	if s.opts.TimeoutSeconds > 0 {
		s.deadline = s.start.Add(time.Duration(s.opts.TimeoutSeconds * float64(time.Second)))
	}
	s.log.WithFields(logrus.Fields{
		"mode":      s.opts.Mode,
		"variables": s.nVars,
		"clauses":   len(s.db.clauses),
	}).Debug("search started")

	outcome := s.search(ctx)

	s.stats.Elapsed = time.Since(s.start)
	s.result = Result{Outcome: outcome, Stats: s.stats}
	if outcome == Sat {
		s.result.Assignment = s.assignment()
	}
	s.done = true
	s.log.WithFields(logrus.Fields{
		"outcome":      outcome.String(),
		"decisions":    s.stats.Decisions,
		"propagations": s.stats.Propagations,
		"conflicts":    s.stats.Conflicts,
	}).Debug("search finished")
	return s.result
}

func (s *Solver) search(ctx context.Context) Outcome {
	if s.rootConflict {
		return Unsat
	}
	if confl := s.propagate(); confl != noClause {
		s.stats.Conflicts++
		return Unsat
	}
	if s.opts.Mode == ModeDPLL {
		return s.searchDPLL(ctx)
	}
	return s.searchCDCL(ctx)
}

// searchCDCL is the conflict-driven controller loop: propagate, learn from
// conflicts and backjump, otherwise decide; restarts and learned-clause
// deletion fire between conflicts.
func (s *Solver) searchCDCL(ctx context.Context) Outcome {
	var restartLimit, sinceRestart int64
	if s.opts.RestartBase > 0 {
		restartLimit = int64(s.opts.RestartBase) * luby(s.stats.Restarts)
	}

	for {
		if confl := s.propagate(); confl != noClause {
			s.stats.Conflicts++
			sinceRestart++
			if err := s.resolveConflict(confl); errors.Is(err, errRootConflict) {
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
		if restartLimit > 0 && sinceRestart >= restartLimit {
			s.restart()
			sinceRestart = 0
			restartLimit = int64(s.opts.RestartBase) * luby(s.stats.Restarts)
			continue
		}
		if s.opts.MaxLearned > 0 && len(s.db.learned) > s.opts.MaxLearned {
			s.reduceDB()
		}
		s.decide()
	}
}

// resolveConflict learns a clause from the conflict and backjumps to its
// assertion level. It returns errRootConflict when the conflict cannot be
// repaired because it already involves level 0.
func (s *Solver) resolveConflict(confl clauseID) error {
	if s.decisionLevel() == 0 {
		return errRootConflict
	}
	learned, assertLevel := s.analyze(confl)
	s.backtrackTo(assertLevel)
	s.learn(learned)
	s.order.decay()
	s.claInc *= 1 / s.opts.ClauseDecay
	return nil
}

// learn inserts a learned clause and asserts its first literal, which the
// backjump left unassigned.
func (s *Solver) learn(learned []lit) {
	id := s.db.add(learned, true)
	s.bumpClauseActivity(id)
	s.stats.Learned++
	s.pushImplied(learned[0], id)
	if s.stats.Conflicts%1000 == 0 {
		s.log.WithFields(logrus.Fields{
			"conflicts": s.stats.Conflicts,
			"learned":   len(s.db.learned),
			"level":     s.decisionLevel(),
		}).Debug("search progress")
	}
}

func (s *Solver) restart() {
	s.backtrackTo(0)
	s.stats.Restarts++
	s.log.WithFields(logrus.Fields{
		"restarts":  s.stats.Restarts,
		"conflicts": s.stats.Conflicts,
	}).Debug("restart")
}

// reduceDB deletes the lowest-activity half of the learned clauses,
// keeping binary clauses and clauses locked as antecedents of current
// assignments.
func (s *Solver) reduceDB() {
	live := slices.Clone(s.db.learned)
	slices.SortFunc(live, func(a, b clauseID) int {
		switch ca, cb := s.db.clauses[a].activity, s.db.clauses[b].activity; {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		}
		return int(a - b)
	})

	deleted := make(map[clauseID]bool)
	for _, id := range live[len(live)/2:] {
		c := &s.db.clauses[id]
		if len(c.lits) <= 2 || s.locked(id) {
			continue
		}
		s.db.remove(id)
		s.stats.Deleted++
		deleted[id] = true
	}
	s.db.learned = slices.DeleteFunc(s.db.learned, func(id clauseID) bool { return deleted[id] })

	s.log.WithFields(logrus.Fields{
		"deleted": len(deleted),
		"learned": len(s.db.learned),
	}).Debug("reduced learned clauses")
}

// locked reports whether the clause is the antecedent of a live assignment.
func (s *Solver) locked(id clauseID) bool {
	c := &s.db.clauses[id]
	v := c.lits[0].index()
	return s.values[v] != lUndef && s.reasons[v] == id
}

func (s *Solver) bumpClauseActivity(id clauseID) {
	c := &s.db.clauses[id]
	c.activity += s.claInc
	if c.activity > clauseActivityCeiling {
		for _, lid := range s.db.learned {
			s.db.clauses[lid].activity *= 1 / clauseActivityCeiling
		}
		s.claInc *= 1 / clauseActivityCeiling
	}
}

// decide pushes the next branching decision: the heuristic's variable with
// its saved phase, negative on a never-assigned variable.
func (s *Solver) decide() {
	v := s.pickBranchVariable()
	l := posLit(int(v))
	if !s.order.phases[v] {
		l = l.neg()
	}
	s.pushDecision(l)
}

// pickBranchVariable returns the unassigned variable with the highest
// activity, or -1 when every variable is assigned.
func (s *Solver) pickBranchVariable() int32 {
	for !s.order.empty() {
		if v := s.order.pop(); s.values[v] == lUndef {
			return v
		}
	}
	return -1
}

// checkBudget enforces the optional resource bounds. It runs once per
// controller iteration, before each decision.
func (s *Solver) checkBudget(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errResourceExceeded, err)
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return fmt.Errorf("%w: wall clock limit of %vs", errResourceExceeded, s.opts.TimeoutSeconds)
	}
	if s.opts.MaxDecisions > 0 && s.stats.Decisions >= s.opts.MaxDecisions {
		return fmt.Errorf("%w: decision limit of %v", errResourceExceeded, s.opts.MaxDecisions)
	}
	return nil
}

func (s *Solver) assignment() Assignment {
	a := make(Assignment, s.nVars)
	for v := range s.nVars {
		a[v] = s.values[v] == lTrue
	}
	return a
}

// luby computes the i-th term (0-based) of the Luby restart sequence
// 1 1 2 1 1 2 4 1 ...
func luby(i int64) int64 {
	size := int64(1)
	for size < i+1 {
		size = 2*size + 1
	}
	for size-1 != i {
		size = (size - 1) / 2
		i %= size
	}
	return (size + 1) / 2
}
