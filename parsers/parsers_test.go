package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calicosat/calico/sat"
)

const satInstance = `c a satisfiable instance
p cnf 10 4
1 3 5 0
-2 -8 6 0
-4 -8 -1 0
-10 -7 -2 0
`

func TestFromCNF(t *testing.T) {
	solver, err := FromCNF(strings.NewReader(satInstance), sat.DefaultOptions)
	require.NoError(t, err)
	require.Equal(t, 10, solver.NumVariables())
	require.Equal(t, sat.Sat, solver.Solve(nil))
}

func TestFromCNF_NotCNF(t *testing.T) {
	in := "p graph 3 2\n1 2 0\n"
	_, err := FromCNF(strings.NewReader(in), sat.DefaultOptions)
	require.Error(t, err)
}

func TestLoadDIMACS(t *testing.T) {
	solver := sat.NewDefaultSolver()
	err := LoadDIMACS("../testdata/exactly_one.cnf", false, solver)
	require.NoError(t, err)
	require.Equal(t, 3, solver.NumVariables())
	require.Equal(t, 4, solver.NumConstraints())
	require.Equal(t, sat.Sat, solver.Solve(nil))
}

func TestLoadDIMACS_MissingFile(t *testing.T) {
	solver := sat.NewDefaultSolver()
	err := LoadDIMACS("../testdata/does_not_exist.cnf", false, solver)
	require.Error(t, err)
}

func TestReadModels(t *testing.T) {
	models, err := ReadModels("../testdata/exactly_one.cnf.models")
	require.NoError(t, err)
	require.Equal(t, []sat.Model{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}, models)
}

func TestReadModels_Empty(t *testing.T) {
	models, err := ReadModels("../testdata/xor_chain.cnf.models")
	require.NoError(t, err)
	require.Len(t, models, 0)
}
