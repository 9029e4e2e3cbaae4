package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetSet(t *testing.T) {
	rs := &ResetSet{}
	for i := 0; i < 4; i++ {
		rs.Expand()
	}
	rs.Clear() // the set must be cleared before first use

	require.False(t, rs.Contains(2))
	rs.Add(2)
	require.True(t, rs.Contains(2))
	require.False(t, rs.Contains(3))

	rs.Clear()
	require.False(t, rs.Contains(2))

	rs.Add(0)
	rs.Add(3)
	require.True(t, rs.Contains(0))
	require.True(t, rs.Contains(3))
}

func TestResetSet_ClearSurvivesTimestampOverflow(t *testing.T) {
	rs := &ResetSet{}
	rs.Expand()
	rs.Add(0)

	for i := 0; i < 1<<16; i++ {
		rs.Clear()
	}
	require.False(t, rs.Contains(0))
}
