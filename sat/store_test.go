package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClauseStore_AllocGet(t *testing.T) {
	st := &clauseStore{}

	r0 := st.alloc([]Literal{0, 2, 4}, false)
	r1 := st.alloc([]Literal{1, 3}, true)

	require.Equal(t, 2, st.count())
	require.Equal(t, []Literal{0, 2, 4}, st.get(r0).Literals())
	require.Equal(t, []Literal{1, 3}, st.get(r1).Literals())
	require.False(t, st.get(r0).isLearnt())
	require.True(t, st.get(r1).isLearnt())
}

func TestClauseStore_ReleaseRecyclesSlot(t *testing.T) {
	st := &clauseStore{}

	r0 := st.alloc([]Literal{0, 2}, false)
	r1 := st.alloc([]Literal{1, 3}, false)
	st.release(r0)
	require.Equal(t, 1, st.count())

	r2 := st.alloc([]Literal{5, 7}, true)
	require.Equal(t, r0, r2) // the freed slot is reused
	require.Equal(t, 2, st.count())
	require.Equal(t, []Literal{5, 7}, st.get(r2).Literals())
	require.Equal(t, []Literal{1, 3}, st.get(r1).Literals())
}

func TestClauseStore_GetReleasedPanics(t *testing.T) {
	st := &clauseStore{}
	ref := st.alloc([]Literal{0, 2}, false)
	st.release(ref)

	require.Panics(t, func() { st.get(ref) })
}

func TestConsumeClause_DeduplicatesLiterals(t *testing.T) {
	s := newSolverWithVars(t, 2)
	x1, x2 := PositiveLiteral(0), PositiveLiteral(1)

	require.NoError(t, s.ConsumeClause([]Literal{x1, x1, x2}))
	require.Equal(t, 1, s.NumConstraints())
	require.Equal(t, 2, s.db.get(s.constraints[0]).Len())
}

func TestConsumeClause_TautologyIsDropped(t *testing.T) {
	s := newSolverWithVars(t, 1)
	x1 := PositiveLiteral(0)

	require.NoError(t, s.ConsumeClause([]Literal{x1, x1.Opposite()}))
	require.Equal(t, 0, s.NumConstraints())
	require.Equal(t, 0, s.db.count())
}

func TestConsumeClause_UnknownVariable(t *testing.T) {
	s := newSolverWithVars(t, 2)

	err := s.ConsumeClause([]Literal{PositiveLiteral(5)})
	require.ErrorIs(t, err, ErrInvalidClause)

	// Ingestion errors must not corrupt the solver state.
	require.NoError(t, s.ConsumeClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}))
	require.Equal(t, Sat, s.Solve(nil))
}

func TestConsumeClause_EmptyClauseMeansUnsat(t *testing.T) {
	s := newSolverWithVars(t, 2)
	require.NoError(t, s.ConsumeClause([]Literal{PositiveLiteral(0)}))
	require.NoError(t, s.ConsumeClause(nil))

	require.Equal(t, Unsat, s.Solve(nil))
	require.Equal(t, Unsat, s.Solve(nil)) // short-circuits forever
}

func TestConsumeClause_UnitIsAppliedDirectly(t *testing.T) {
	s := newSolverWithVars(t, 1)
	require.NoError(t, s.ConsumeClause([]Literal{PositiveLiteral(0)}))

	// Unit clauses bypass the store and land on the trail.
	require.Equal(t, 0, s.NumConstraints())
	require.Equal(t, True, s.VarValue(0))
}
