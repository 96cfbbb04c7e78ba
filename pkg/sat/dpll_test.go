package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignPureLiterals(t *testing.T) {
	//** Arrange
	formula := &Formula{Variables: 3, Clauses: [][]int{{1, -2}, {1, 2, -3}}}
	solver, err := NewSolver(formula, modeOptions(ModeDPLL))
	assert.Nil(t, err)

	//** Act
	solver.assignPureLiterals()

	//** Assert
	assert.Equal(t, lTrue, solver.varValue(0))  // x1 occurs only positively
	assert.Equal(t, lUndef, solver.varValue(1)) // x2 occurs with both polarities
	assert.Equal(t, lFalse, solver.varValue(2)) // x3 occurs only negatively
	assert.Equal(t, int64(0), solver.stats.Propagations)
	assert.Equal(t, 0, solver.decisionLevel())
}

func TestFlipLatestOpenDecision(t *testing.T) {
	//** Arrange
	formula := &Formula{Variables: 3, Clauses: [][]int{{1, 2, 3}}}
	solver, err := NewSolver(formula, modeOptions(ModeDPLL))
	assert.Nil(t, err)
	solver.flipped = []bool{false}
	solver.pushDecision(litFromInt(-1))
	solver.flipped = append(solver.flipped, false)
	solver.pushDecision(litFromInt(-2))
	solver.flipped = append(solver.flipped, false)

	//** Act
	err = solver.flipLatestOpenDecision()

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, solver.decisionLevel())
	assert.Equal(t, lTrue, solver.varValue(1)) // x2 re-asserted positively
	assert.Equal(t, []bool{false, false, true}, solver.flipped)
	assert.Equal(t, int64(2), solver.stats.Decisions) // a flip is not a decision

	//** Act
	err = solver.flipLatestOpenDecision()

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, []bool{false, true}, solver.flipped)
	assert.Equal(t, lTrue, solver.varValue(0))
	assert.Equal(t, lUndef, solver.varValue(1))

	//** Act
	err = solver.flipLatestOpenDecision()

	//** Assert
	assert.ErrorIs(t, err, errRootConflict)
}
