package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnqueueRejectsContradictions(t *testing.T) {
	//** Arrange
	solver, err := NewSolver(&Formula{Variables: 2, Clauses: [][]int{{1, 2}}}, DefaultOptions())
	assert.Nil(t, err)

	//** Act + Assert
	assert.True(t, solver.enqueue(litFromInt(-1), noClause))
	assert.Equal(t, lFalse, solver.varValue(0))
	assert.Equal(t, lTrue, solver.litValue(litFromInt(-1)))
	assert.Equal(t, lFalse, solver.litValue(litFromInt(1)))
	assert.Equal(t, lUndef, solver.litValue(litFromInt(2)))

	// Agreeing again is a no-op, contradicting is rejected.
	assert.True(t, solver.enqueue(litFromInt(-1), noClause))
	assert.False(t, solver.enqueue(litFromInt(1), noClause))
	assert.Len(t, solver.trail, 1)
}

func TestBacktrackRestoresState(t *testing.T) {
	//** Arrange
	formula := &Formula{Variables: 4, Clauses: [][]int{{1, 2, 3, 4}}}
	solver, err := NewSolver(formula, DefaultOptions())
	assert.Nil(t, err)

	//** Act
	solver.pushDecision(litFromInt(-1))
	solver.propagate()
	solver.pushDecision(litFromInt(-2))
	solver.propagate()
	solver.pushDecision(litFromInt(-3))
	confl := solver.propagate()

	//** Assert
	assert.Equal(t, noClause, confl)
	assert.Equal(t, int64(1), solver.stats.Propagations) // the clause forces x4
	assert.Equal(t, lTrue, solver.varValue(3))
	assert.Equal(t, 3, solver.decisionLevel())
	assert.Equal(t, int64(3), solver.stats.MaxDepth)

	//** Act
	solver.backtrackTo(1)

	//** Assert
	assert.Equal(t, 1, solver.decisionLevel())
	assert.Len(t, solver.trail, 1)
	assert.Equal(t, 1, solver.qhead)
	assert.Equal(t, lFalse, solver.varValue(0))
	for v := int32(1); v <= 3; v++ {
		assert.Equal(t, lUndef, solver.varValue(v))
		assert.Equal(t, noClause, solver.reasons[v])
		assert.GreaterOrEqual(t, solver.order.pos[v], int32(0)) // back in the heap
	}
	assert.True(t, solver.order.phases[3]) // x4 held true when unassigned
	assert.False(t, solver.order.phases[2])
}
