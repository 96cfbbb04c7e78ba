package sat

type clauseID int32

const noClause clauseID = -1

type clause struct {
	lits     []lit
	activity float64
	learned  bool
	deleted  bool
}

// database owns every clause, original and learned, together with the watch
// index. Clauses are addressed by stable ids; deletion tombstones the slot,
// so antecedent references held by the trail never dangle.
type database struct {
	clauses []clause
	watches [][]clauseID // indexed by lit; ids of the clauses watching it
	learned []clauseID   // ids of live learned clauses
}

func newDatabase(numVars, capacity int) *database {
	return &database{
		clauses: make([]clause, 0, capacity),
		watches: make([][]clauseID, 2*numVars),
	}
}

// add stores a clause and watches its first two literals. The literal slice
// is copied, so callers may reuse their buffer. Unit clauses get no watches;
// the caller enqueues their literal directly.
func (d *database) add(lits []lit, learned bool) clauseID {
	id := clauseID(len(d.clauses))
	d.clauses = append(d.clauses, clause{
		lits:    append([]lit(nil), lits...),
		learned: learned,
	})
	if len(lits) >= 2 {
		d.watches[lits[0]] = append(d.watches[lits[0]], id)
		d.watches[lits[1]] = append(d.watches[lits[1]], id)
	}
	if learned {
		d.learned = append(d.learned, id)
	}
	return id
}

func (d *database) watchersOf(l lit) []clauseID {
	return d.watches[l]
}

// reassignWatch moves the clause's second watch to the literal at position
// k. The caller is responsible for dropping the clause from the old
// literal's bucket.
func (d *database) reassignWatch(id clauseID, k int) {
	c := &d.clauses[id]
	c.lits[1], c.lits[k] = c.lits[k], c.lits[1]
	d.watches[c.lits[1]] = append(d.watches[c.lits[1]], id)
}

// remove tombstones a clause and drops its watch references.
func (d *database) remove(id clauseID) {
	c := &d.clauses[id]
	if len(c.lits) >= 2 {
		d.unwatch(c.lits[0], id)
		d.unwatch(c.lits[1], id)
	}
	c.lits = nil
	c.deleted = true
}

func (d *database) unwatch(l lit, id clauseID) {
	ws := d.watches[l]
	for i, w := range ws {
		if w == id {
			d.watches[l] = append(ws[:i], ws[i+1:]...)
			return
		}
	}
}
