package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLuby(t *testing.T) {
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}

	got := make([]float64, len(want))
	for i := range got {
		got[i] = luby(2, i)
	}

	require.Equal(t, want, got)
}
