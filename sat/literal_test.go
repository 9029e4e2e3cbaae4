package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteral_Encoding(t *testing.T) {
	for varID := 0; varID < 10; varID++ {
		pos := PositiveLiteral(varID)
		neg := NegativeLiteral(varID)

		require.Equal(t, varID, pos.VarID())
		require.Equal(t, varID, neg.VarID())
		require.True(t, pos.IsPositive())
		require.False(t, neg.IsPositive())
		require.Equal(t, neg, pos.Opposite())
		require.Equal(t, pos, neg.Opposite())
		require.Equal(t, pos, pos.Opposite().Opposite())
	}
}

func TestLiteral_DenseIndexes(t *testing.T) {
	require.Equal(t, Literal(0), PositiveLiteral(0))
	require.Equal(t, Literal(1), NegativeLiteral(0))
	require.Equal(t, Literal(8), PositiveLiteral(4))
	require.Equal(t, Literal(9), NegativeLiteral(4))
}

func TestLiteral_String(t *testing.T) {
	require.Equal(t, "3", PositiveLiteral(3).String())
	require.Equal(t, "!3", NegativeLiteral(3).String())
}

func TestLiteralChunk(t *testing.T) {
	s := NewDefaultSolver()
	first, err := s.NewLiteral()
	require.NoError(t, err)
	require.Equal(t, PositiveLiteral(0), first)

	chunk, err := s.NewLiteralChunk(3)
	require.NoError(t, err)
	require.Equal(t, 3, chunk.Len())
	require.Equal(t, PositiveLiteral(1), chunk.At(0))
	require.Equal(t, PositiveLiteral(3), chunk.At(2))
	require.Equal(t, []Literal{PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(3)}, chunk.Literals())
	require.Equal(t, 4, s.NumVariables())

	require.Panics(t, func() { chunk.At(3) })
}

func TestNewLiteralChunk_NegativeSize(t *testing.T) {
	s := NewDefaultSolver()
	_, err := s.NewLiteralChunk(-1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}
